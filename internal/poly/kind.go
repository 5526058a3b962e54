package poly

import "fmt"

// Kind names a buildable solid.
type Kind int

const (
	KindTetrahedron Kind = iota
	KindCube
	KindCubeQuads
	KindOctahedron
	KindIcosahedron
	KindDodecahedron
	KindIcosidodecahedron
	KindRhombitruncatedIcosidodecahedron
)

var kindNames = map[Kind]string{
	KindTetrahedron:                      "tetrahedron",
	KindCube:                             "cube",
	KindCubeQuads:                        "cube-quads",
	KindOctahedron:                       "octahedron",
	KindIcosahedron:                      "icosahedron",
	KindDodecahedron:                     "dodecahedron",
	KindIcosidodecahedron:                "icosidodecahedron",
	KindRhombitruncatedIcosidodecahedron: "rhombitruncated-icosidodecahedron",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown solid %q", name)
}

// Build seeds p with the named solid, drawing any scratch buffers from pool.
// Returns false when the pool is exhausted mid-construction; p is then left
// untouched.
func Build(k Kind, p *Polyhedron, pool *Pool) bool {
	switch k {
	case KindTetrahedron:
		InitTetrahedron(p)
	case KindCube:
		InitCube(p)
	case KindCubeQuads:
		InitCubeQuads(p)
	case KindOctahedron:
		return InitOctahedron(p, pool)
	case KindIcosahedron:
		InitIcosahedron(p)
	case KindDodecahedron:
		return InitDodecahedron(p, pool)
	case KindIcosidodecahedron:
		return InitIcosidodecahedron(p, pool)
	case KindRhombitruncatedIcosidodecahedron:
		return InitRhombitruncatedIcosidodecahedron(p, pool)
	default:
		return false
	}
	return true
}
