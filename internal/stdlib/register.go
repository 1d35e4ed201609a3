package stdlib

import "github.com/shiroscript/shiro/internal/natives"

// RegisterAll binds every library this interpreter implements into r.
// Called once when the runtime driver builds its native registry.
func RegisterAll(r *natives.Registry) {
	r.Register("@std/io", LibIO)
	r.Register("@std/time", LibTime)
	r.Register("@std/math", LibMath)
	r.Register("@std/collections", LibCollections)
	r.Register("@std/strings", LibStrings)
	r.Register("@std/encoding", LibEncoding)
}
