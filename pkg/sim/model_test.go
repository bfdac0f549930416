package sim_test

import (
	"bytes"
	"math"

	. "github.com/mandelsoft/simgraph/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/simgraph/pkg/sim"
)

var _ = Describe("model", func() {
	var m *me.Model

	BeforeEach(func() {
		m = me.New(me.WithId("test"))
	})

	It("uses given or generated ids", func() {
		Expect(m.Id()).To(Equal("test"))
		Expect(me.New().Id()).NotTo(BeEmpty())
		Expect(me.New().Id()).NotTo(Equal(me.New().Id()))
	})

	Context("entities", func() {
		It("creates ids per category", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			p1 := Must(m.AddPosi([]float64{1, 0, 0}))
			pt := Must(m.AddPoint(p0))
			pl := Must(m.AddPline([]string{p0, p1}, false))
			co := Must(m.AddColl())

			Expect([]string{p0, p1, pt, pl, co}).To(Equal([]string{"ps0", "ps1", "pt0", "pl0", "co0"}))
			Expect(Must(m.GetEnts(me.VERTS, nil))).To(Equal([]string{"_v0", "_v1", "_v2"}))
			Expect(Must(m.GetEnts(me.EDGES, nil))).To(Equal([]string{"_e0"}))
			Expect(Must(m.GetEnts(me.WIRES, nil))).To(Equal([]string{"_w0"}))
			Expect(Must(m.EntType(pl))).To(Equal(me.PLINES))
		})

		It("lists every entity once in creation order", func() {
			var posis []string
			for i := 0; i < 5; i++ {
				posis = append(posis, Must(m.AddPosi([]float64{float64(i), 0, 0})))
			}
			Must(m.AddPline(posis, true))
			Must(m.AddPgon(posis[:3]))

			Expect(Must(m.GetEnts(me.POSIS, nil))).To(Equal(posis))
			Expect(Must(m.NumEnts(me.POSIS))).To(Equal(5))
			Expect(Must(m.NumEnts(me.VERTS))).To(Equal(8))
			Expect(Must(m.NumEnts(me.EDGES))).To(Equal(8))
			Expect(Must(m.NumEnts(me.WIRES))).To(Equal(2))
			Expect(Must(m.NumEnts(me.COLLS))).To(Equal(0))
			Expect(Must(m.GetEnts(me.COLLS, nil))).To(BeEmpty())
		})

		It("creates no position for invalid coordinates", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))

			_, err := m.AddPosi([]float64{math.NaN(), 0, 0})
			Expect(err).To(MatchError(me.ErrUnrecognizedValueType))
			_, err = m.AddPosi([]float64{0, math.Inf(-1), 0})
			Expect(err).To(MatchError(me.ErrUnrecognizedValueType))

			Expect(Must(m.NumEnts(me.POSIS))).To(Equal(1))
			Expect(Must(m.GetEnts(me.POSIS, nil))).To(Equal([]string{p0}))
			Expect(Must(m.AddPosi([]float64{1, 0, 0}))).To(Equal("ps1"))
		})

		It("builds a triangle", func() {
			posis := []string{
				Must(m.AddPosi([]float64{0, 0, 0})),
				Must(m.AddPosi([]float64{1, 0, 0})),
				Must(m.AddPosi([]float64{0, 1, 0})),
			}
			pgon := Must(m.AddPgon(posis))

			Expect(Must(m.NumEnts(me.PGONS))).To(Equal(1))
			Expect(Must(m.NumEnts(me.VERTS))).To(Equal(3))
			Expect(Must(m.NumEnts(me.EDGES))).To(Equal(3))
			Expect(Must(m.NumEnts(me.WIRES))).To(Equal(1))
			Expect(Must(m.GetEnts(me.POSIS, []string{pgon}))).To(ConsistOf(posis))
			Expect(Must(m.PgonPosis(pgon))).To(Equal([][]string{posis}))
		})

		It("builds polygons with holes", func() {
			var posis []string
			for i := 0; i < 7; i++ {
				posis = append(posis, Must(m.AddPosi([]float64{float64(i), 0, 0})))
			}
			pgon := Must(m.AddPgon(posis[:4], posis[4:]))

			Expect(Must(m.PgonPosis(pgon))).To(Equal([][]string{posis[:4], posis[4:]}))
			Expect(Must(m.NumEnts(me.WIRES))).To(Equal(2))
			Expect(Must(m.NumEnts(me.EDGES))).To(Equal(7))
			Expect(Must(m.GetEnts(me.WIRES, []string{pgon}))).To(Equal([]string{"_w0", "_w1"}))
		})

		It("handles open and closed polylines", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			p1 := Must(m.AddPosi([]float64{1, 0, 0}))
			p2 := Must(m.AddPosi([]float64{1, 1, 0}))
			open := Must(m.AddPline([]string{p0, p1, p2}, false))
			closed := Must(m.AddPline([]string{p0, p1, p2}, true))

			Expect(Must(m.PlinePosis(open))).To(Equal([]string{p0, p1, p2}))
			Expect(Must(m.PlinePosis(closed))).To(Equal([]string{p0, p1, p2, p0}))
			Expect(Must(m.PlineIsClosed(open))).To(BeFalse())
			Expect(Must(m.PlineIsClosed(closed))).To(BeTrue())
			Expect(Must(m.GetEnts(me.EDGES, []string{open}))).To(HaveLen(2))
			Expect(Must(m.GetEnts(me.EDGES, []string{closed}))).To(HaveLen(3))
		})

		It("does not treat repeated positions as closing", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			p1 := Must(m.AddPosi([]float64{1, 0, 0}))
			pl := Must(m.AddPline([]string{p0, p1, p0}, false))

			Expect(Must(m.PlineIsClosed(pl))).To(BeFalse())
			Expect(Must(m.PlinePosis(pl))).To(Equal([]string{p0, p1, p0}))
		})

		It("returns the position of a point", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			pt := Must(m.AddPoint(p0))
			Expect(Must(m.PointPosi(pt))).To(Equal(p0))
		})

		It("rejects invalid geometry", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			p1 := Must(m.AddPosi([]float64{1, 0, 0}))

			_, err := m.AddPline([]string{p0}, false)
			Expect(err).To(MatchError(me.ErrInvalidGeometry))
			_, err = m.AddPgon([]string{p0, p1})
			Expect(err).To(MatchError(me.ErrInvalidGeometry))
			_, err = m.AddPgon([]string{p0, p1, p0}, []string{p1})
			Expect(err).To(MatchError(me.ErrInvalidGeometry))
			Expect(Must(m.NumEnts(me.VERTS))).To(Equal(0))
		})

		It("rejects invalid entities", func() {
			p0 := Must(m.AddPosi([]float64{0, 0, 0}))
			pt := Must(m.AddPoint(p0))

			_, err := m.AddPoint(pt)
			Expect(err).To(MatchError(me.ErrInvalidEntity))
			_, err = m.AddPline([]string{p0, "unknown"}, false)
			Expect(err).To(MatchError(me.ErrInvalidEntity))
			_, err = m.AddPoint("posis")
			Expect(err).To(MatchError(me.ErrInvalidEntity))
			_, err = m.EntType("unknown")
			Expect(err).To(MatchError(me.ErrInvalidEntity))
			_, err = m.PlinePosis(pt)
			Expect(err).To(MatchError(me.ErrInvalidEntity))
		})
	})

	Context("collections", func() {
		var p0, pt, pl, pg, c0, c1 string

		BeforeEach(func() {
			p0 = Must(m.AddPosi([]float64{0, 0, 0}))
			p1 := Must(m.AddPosi([]float64{1, 0, 0}))
			p2 := Must(m.AddPosi([]float64{1, 1, 0}))
			pt = Must(m.AddPoint(p0))
			pl = Must(m.AddPline([]string{p0, p1}, false))
			pg = Must(m.AddPgon([]string{p0, p1, p2}))
			c0 = Must(m.AddColl())
			c1 = Must(m.AddColl())
		})

		It("accepts points, polylines, polygons and collections", func() {
			MustBeSuccessful(m.AddCollEnt(c0, pt))
			MustBeSuccessful(m.AddCollEnt(c0, pl))
			MustBeSuccessful(m.AddCollEnt(c0, pg))
			MustBeSuccessful(m.AddCollEnt(c1, c0))

			Expect(Must(m.GetEnts(me.POINTS, []string{c0}))).To(Equal([]string{pt, pl, pg}))
			Expect(Must(m.GetEnts(me.PLINES, []string{c0}))).To(Equal([]string{pt, pl, pg}))
			Expect(Must(m.GetEnts(me.PGONS, []string{c0}))).To(Equal([]string{pt, pl, pg}))
			Expect(Must(m.GetEnts(me.COLLS, []string{pl}))).To(Equal([]string{c0}))
			Expect(Must(m.GetEnts(me.COLLS, []string{c1}))).To(Equal([]string{c1}))
		})

		It("rejects other entities", func() {
			Expect(m.AddCollEnt(c0, p0)).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(c0, "_v0")).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(c0, "_e0")).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(c0, "_w0")).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(pt, pl)).To(MatchError(me.ErrInvalidEntity))
			Expect(m.AddCollEnt(c0, "unknown")).To(MatchError(me.ErrInvalidEntity))
		})

		It("rejects containment cycles", func() {
			c2 := Must(m.AddColl())
			MustBeSuccessful(m.AddCollEnt(c0, c1))
			MustBeSuccessful(m.AddCollEnt(c1, c2))

			Expect(m.AddCollEnt(c0, c0)).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(c2, c0)).To(MatchError(me.ErrInvalidCollectionMember))
			Expect(m.AddCollEnt(c1, c0)).To(MatchError(me.ErrInvalidCollectionMember))
		})

		It("adds members once", func() {
			MustBeSuccessful(m.AddCollEnt(c0, pt))
			MustBeSuccessful(m.AddCollEnt(c0, pt))

			doc := Must(m.ToDocument())
			Expect(doc.Geometry.CollPoints).To(Equal([][]int{{0}, {}}))
		})
	})

	Context("model attributes", func() {
		It("keeps the order of first assignment", func() {
			MustBeSuccessful(m.SetModelAttribValue("b", 1))
			MustBeSuccessful(m.SetModelAttribValue("a", "x"))
			MustBeSuccessful(m.SetModelAttribValue("b", 2))

			Expect(m.ModelAttribNames()).To(Equal([]string{"b", "a"}))
			v, ok := m.GetModelAttribValue("b")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(2.0))
			_, ok = m.GetModelAttribValue("c")
			Expect(ok).To(BeFalse())
		})

		It("rejects unsupported values", func() {
			Expect(m.SetModelAttribValue("a", struct{}{})).To(MatchError(me.ErrUnrecognizedValueType))
		})
	})

	It("dumps the model", func() {
		p0 := Must(m.AddPosi([]float64{1, 2, 3}))
		Must(m.AddPoint(p0))
		MustBeSuccessful(m.SetModelAttribValue("author", "me"))

		buf := bytes.NewBuffer(nil)
		MustBeSuccessful(m.Info(buf))
		Expect(buf.String()).To(HavePrefix("MODEL: test\nNODES:\n"))
		Expect(buf.String()).To(ContainSubstring("- ps0: {ent_type=posis, node_type=ent}\n"))
		Expect(buf.String()).To(ContainSubstring("value=[1,2,3]"))
		Expect(buf.String()).To(ContainSubstring("EDGES: entity (m2m)\n- _v0: [ps0]\n- pt0: [_v0]\n"))
		Expect(buf.String()).To(HaveSuffix("ATTRIBUTE: author=\"me\"\n"))
	})
})
