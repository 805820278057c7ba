package entrypoint

// Default is the process-wide registry populated by init-time registration.
var Default = NewRegistry()

func Register(name string, fn Func) {
	Default.MustRegister(name, fn)
}

func Resolve(name string) (Func, error) {
	return Default.Resolve(name)
}

func Names() []string {
	return Default.Names()
}
