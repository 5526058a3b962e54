package poly

import "math"

// Rotate rotates the whole solid by the Tait-Bryan angles yaw (Z), pitch (Y),
// roll (X), applied Z then Y then X, and re-prepares. One of the two legal
// in-place mutations of a Polyhedron.
func (p *Polyhedron) Rotate(yaw, pitch, roll float64) {
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cr, sr := math.Cos(roll), math.Sin(roll)

	r := [3][3]float64{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr},
		{-sp, cp * sr, cp * cr},
	}

	for i := 0; i < p.V; i++ {
		v := p.Vertices[i]
		p.Vertices[i] = Vec3{
			X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
			Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
			Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
		}
	}

	// topology is untouched, but keep the tables in sync
	p.Prepare()
}

// OrientToVertex rotates the solid so vertex vidx points along -Z ("down"),
// for aligning the logical solid with how the sculpture is mounted.
func (p *Polyhedron) OrientToVertex(vidx int) {
	v := p.Vertices[vidx]
	yaw := -math.Atan2(v.Y, v.X)
	r := math.Sqrt(v.X*v.X + v.Y*v.Y)
	pitch := math.Atan2(r, -v.Z)
	p.Rotate(yaw, pitch, 0)
}

// OrientToEdge rotates the solid so the average normal of the two faces
// meeting at edge (v0,v1) points along -Z. No-op if the vertices are not
// connected.
func (p *Polyhedron) OrientToEdge(v0, v1 int) {
	eidx := p.FindEdge(v0, v1)
	if eidx == EdgeNone {
		return
	}

	faces := p.EdgeFaces(eidx)
	g := p.FaceNormal(faces[0])
	if faces[1] != FaceNone {
		g = g.Add(p.FaceNormal(faces[1]))
	}
	g = g.Normalize()

	yaw := -math.Atan2(g.Y, g.X)
	pitch := -math.Atan2(math.Sqrt(g.X*g.X+g.Y*g.Y), g.Z)
	p.Rotate(yaw, pitch, 0)
}

// OrientToFace rotates the solid so face fidx's normal points along -Z.
func (p *Polyhedron) OrientToFace(fidx int) {
	n := p.FaceNormal(fidx)
	yaw := -math.Atan2(n.Y, n.X)
	pitch := -math.Atan2(math.Sqrt(n.X*n.X+n.Y*n.Y), n.Z)
	p.Rotate(yaw, pitch, 0)
}
