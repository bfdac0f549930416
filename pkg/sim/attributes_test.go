package sim_test

import (
	. "github.com/mandelsoft/simgraph/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/simgraph/pkg/sim"
)

func attrib(m *me.Model, ent, name string) interface{} {
	v, ok, err := m.GetAttribValue(ent, name)
	ExpectWithOffset(1, err).To(Succeed())
	ExpectWithOffset(1, ok).To(BeTrue())
	return v
}

var _ = Describe("attributes", func() {
	var m *me.Model
	var p0, p1 string

	BeforeEach(func() {
		m = me.New()
		p0 = Must(m.AddPosi([]float64{0, 0, 0}))
		p1 = Must(m.AddPosi([]float64{1, 0, 0}))
	})

	Context("definitions", func() {
		It("predefines the position coordinates", func() {
			Expect(m.HasAttrib(me.POSIS, me.XYZ)).To(BeTrue())
			Expect(Must(m.AttribDataType(me.POSIS, me.XYZ))).To(Equal(me.LIST))
			Expect(attrib(m, p1, me.XYZ)).To(Equal([]interface{}{1.0, 0.0, 0.0}))
		})

		It("accepts identical definitions", func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "weight", me.NUMBER))
			MustBeSuccessful(m.AddAttrib(me.POSIS, "weight", me.NUMBER))
			Expect(Must(m.AttribNames(me.POSIS))).To(Equal([]string{me.XYZ, "weight"}))
		})

		It("rejects conflicting definitions", func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "weight", me.NUMBER))
			Expect(m.AddAttrib(me.POSIS, "weight", me.STRING)).To(MatchError(me.ErrAttributeTypeConflict))
			Expect(m.AddAttrib(me.POSIS, me.XYZ, me.NUMBER)).To(MatchError(me.ErrAttributeTypeConflict))
			Expect(Must(m.AttribDataType(me.POSIS, "weight"))).To(Equal(me.NUMBER))
		})

		It("scopes definitions to categories", func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "weight", me.NUMBER))
			MustBeSuccessful(m.AddAttrib(me.COLLS, "weight", me.STRING))
			Expect(m.HasAttrib(me.PLINES, "weight")).To(BeFalse())
			Expect(Must(m.AttribDataType(me.COLLS, "weight"))).To(Equal(me.STRING))
		})

		It("rejects invalid categories and types", func() {
			Expect(m.AddAttrib(me.MODEL, "name", me.STRING)).To(MatchError(me.ErrUnknownEntityType))
			Expect(m.AddAttrib("cubes", "name", me.STRING)).To(MatchError(me.ErrUnknownEntityType))
			Expect(m.AddAttrib(me.POSIS, "name", "text")).To(MatchError(me.ErrUnrecognizedValueType))
			_, err := m.AttribDataType(me.POSIS, "name")
			Expect(err).To(MatchError(me.ErrUnknownAttribute))
		})
	})

	Context("values", func() {
		BeforeEach(func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "name", me.STRING))
			MustBeSuccessful(m.AddAttrib(me.POSIS, "tags", me.DICT))
		})

		It("sets and gets values", func() {
			MustBeSuccessful(m.SetAttribValue(p0, "name", "origin"))
			MustBeSuccessful(m.SetAttribValue(p0, "tags", map[string]interface{}{"a": []int{1}}))

			Expect(attrib(m, p0, "name")).To(Equal("origin"))
			Expect(attrib(m, p0, "tags")).To(Equal(map[string]interface{}{"a": []interface{}{1.0}}))
		})

		It("reports unset attributes as absent", func() {
			v, ok, err := m.GetAttribValue(p0, "name")
			Expect(err).To(Succeed())
			Expect(ok).To(BeFalse())
			Expect(v).To(BeNil())

			_, ok, err = m.GetAttribValue(p0, "undefined")
			Expect(err).To(Succeed())
			Expect(ok).To(BeFalse())
		})

		It("returns the value assigned first", func() {
			MustBeSuccessful(m.SetAttribValue(p0, "name", "first"))
			MustBeSuccessful(m.SetAttribValue(p0, "name", "second"))

			Expect(attrib(m, p0, "name")).To(Equal("first"))
		})

		It("returns copies", func() {
			MustBeSuccessful(m.SetAttribValue(p0, "tags", map[string]interface{}{"a": 1}))
			v := attrib(m, p0, "tags")
			v.(map[string]interface{})["a"] = 2

			Expect(attrib(m, p0, "tags")).To(Equal(map[string]interface{}{"a": 1.0}))
		})

		It("shares value nodes for identical values", func() {
			MustBeSuccessful(m.SetAttribValue(p0, "name", "same"))
			MustBeSuccessful(m.SetAttribValue(p1, "name", "same"))

			doc := Must(m.ToDocument())
			Expect(doc.Attributes.Posis[1].Name).To(Equal("name"))
			Expect(doc.Attributes.Posis[1].Values).To(Equal([]interface{}{"same"}))
			Expect(doc.Attributes.Posis[1].Entities).To(Equal([][]int{{0, 1}}))
		})

		It("distinguishes values of different attributes", func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "label", me.STRING))
			MustBeSuccessful(m.SetAttribValue(p0, "name", "same"))
			MustBeSuccessful(m.SetAttribValue(p0, "label", "same"))

			Expect(attrib(m, p0, "label")).To(Equal("same"))
			doc := Must(m.ToDocument())
			Expect(doc.Attributes.Posis[3].Name).To(Equal("label"))
			Expect(doc.Attributes.Posis[3].Entities).To(Equal([][]int{{0}}))
		})

		It("identifies numbers by value", func() {
			MustBeSuccessful(m.AddAttrib(me.POSIS, "weight", me.NUMBER))
			MustBeSuccessful(m.SetAttribValue(p0, "weight", 1))
			MustBeSuccessful(m.SetAttribValue(p1, "weight", 1.0))

			doc := Must(m.ToDocument())
			Expect(doc.Attributes.Posis[3].Values).To(Equal([]interface{}{1.0}))
		})

		It("rejects undefined attributes", func() {
			Expect(m.SetAttribValue(p0, "undefined", "x")).To(MatchError(me.ErrUnknownAttribute))
			pt := Must(m.AddPoint(p0))
			Expect(m.SetAttribValue(pt, "name", "x")).To(MatchError(me.ErrUnknownAttribute))
		})

		It("rejects values of the wrong type", func() {
			Expect(m.SetAttribValue(p0, "name", 1)).To(MatchError(me.ErrAttributeTypeConflict))
			Expect(m.SetAttribValue(p0, me.XYZ, 1)).To(MatchError(me.ErrAttributeTypeConflict))
			Expect(m.SetAttribValue(p0, "name", struct{}{})).To(MatchError(me.ErrUnrecognizedValueType))
		})

		It("rejects invalid entities", func() {
			Expect(m.SetAttribValue("unknown", "name", "x")).To(MatchError(me.ErrInvalidEntity))
			_, _, err := m.GetAttribValue("posis", "name")
			Expect(err).To(MatchError(me.ErrInvalidEntity))
		})
	})
})
