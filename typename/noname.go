//go:build ntype_noname

package typename

const available = false
