package pathview

// Scene is the ordered, read-only object list of one render pass.
type Scene struct {
	Source  string
	Objects []Object
}

func (s *Scene) AddObject(o Object) {
	s.Objects = append(s.Objects, o)
}
