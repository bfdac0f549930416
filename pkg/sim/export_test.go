package sim_test

import (
	"github.com/go-test/deep"
	. "github.com/mandelsoft/simgraph/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/simgraph/pkg/document"
	me "github.com/mandelsoft/simgraph/pkg/sim"
)

var _ = Describe("export", func() {
	It("exports an empty model", func() {
		doc := Must(me.New().ToDocument())
		Expect(doc.Type).To(Equal(document.TYPE))
		Expect(doc.Version).To(Equal(document.VERSION))
		Expect(doc.Geometry.NumPosis).To(Equal(0))
		Expect(doc.Attributes.Posis).To(Equal([]document.AttributeData{
			{Name: me.XYZ, DataType: "list", Values: []interface{}{}, Entities: [][]int{}},
		}))
		Expect(doc.Validate()).To(Succeed())
	})

	It("exports geometry and attributes", func() {
		m := me.New()
		p0 := Must(m.AddPosi([]float64{0, 0, 0}))
		p1 := Must(m.AddPosi([]float64{1, 0, 0}))
		p2 := Must(m.AddPosi([]float64{1, 1, 0}))
		pt := Must(m.AddPoint(p2))
		pl := Must(m.AddPline([]string{p0, p1, p2}, true))
		pg := Must(m.AddPgon([]string{p0, p1, p2}))
		c0 := Must(m.AddColl())
		c1 := Must(m.AddColl())
		MustBeSuccessful(m.AddCollEnt(c0, pt))
		MustBeSuccessful(m.AddCollEnt(c0, pl))
		MustBeSuccessful(m.AddCollEnt(c1, pg))
		MustBeSuccessful(m.AddCollEnt(c1, c0))

		MustBeSuccessful(m.AddAttrib(me.COLLS, "name", me.STRING))
		MustBeSuccessful(m.SetAttribValue(c0, "name", "lines"))
		MustBeSuccessful(m.SetAttribValue(c1, "name", "all"))
		MustBeSuccessful(m.AddAttrib(me.PGONS, "area", me.NUMBER))
		MustBeSuccessful(m.AddAttrib(me.POINTS, "visible", me.BOOLEAN))
		MustBeSuccessful(m.SetAttribValue(pt, "visible", true))
		MustBeSuccessful(m.SetModelAttribValue("author", "me"))
		MustBeSuccessful(m.SetModelAttribValue("scale", 2))

		expected := &document.Document{
			Type:    "SIM",
			Version: "0.1",
			Geometry: document.Geometry{
				NumPosis:   3,
				Points:     []int{2},
				Plines:     [][]int{{0, 1, 2, 0}},
				Pgons:      [][][]int{{{0, 1, 2}}},
				CollPoints: [][]int{{0}, {}},
				CollPlines: [][]int{{0}, {}},
				CollPgons:  [][]int{{}, {0}},
				CollColls:  [][]int{{}, {0}},
			},
			Attributes: document.Attributes{
				Posis: []document.AttributeData{
					{
						Name:     "xyz",
						DataType: "list",
						Values: []interface{}{
							[]interface{}{0.0, 0.0, 0.0},
							[]interface{}{1.0, 0.0, 0.0},
							[]interface{}{1.0, 1.0, 0.0},
						},
						Entities: [][]int{{0}, {1}, {2}},
					},
				},
				Verts:  []document.AttributeData{},
				Edges:  []document.AttributeData{},
				Wires:  []document.AttributeData{},
				Points: []document.AttributeData{{Name: "visible", DataType: "boolean", Values: []interface{}{true}, Entities: [][]int{{0}}}},
				Plines: []document.AttributeData{},
				Pgons:  []document.AttributeData{{Name: "area", DataType: "number", Values: []interface{}{}, Entities: [][]int{}}},
				Colls: []document.AttributeData{
					{Name: "name", DataType: "string", Values: []interface{}{"lines", "all"}, Entities: [][]int{{0}, {1}}},
				},
				Model: []document.ModelAttribute{
					{Name: "author", Value: "me"},
					{Name: "scale", Value: 2.0},
				},
			},
		}

		doc := Must(m.ToDocument())
		Expect(deep.Equal(doc, expected)).To(BeNil())
		Expect(doc.Validate()).To(Succeed())
	})

	It("lists entities once per value", func() {
		m := me.New()
		p0 := Must(m.AddPosi([]float64{0, 0, 0}))
		MustBeSuccessful(m.AddAttrib(me.POSIS, "name", me.STRING))
		MustBeSuccessful(m.SetAttribValue(p0, "name", "a"))
		MustBeSuccessful(m.SetAttribValue(p0, "name", "b"))
		MustBeSuccessful(m.SetAttribValue(p0, "name", "a"))

		doc := Must(m.ToDocument())
		Expect(doc.Attributes.Posis[1].Values).To(Equal([]interface{}{"a", "b"}))
		Expect(doc.Attributes.Posis[1].Entities).To(Equal([][]int{{0}, {0}}))
	})
})
