package cmds

// Var defines name to set the returned value from the next argument, and
// name+"." to reset it to the zero value. With a pointer T the argument is
// optional, and a nil value tells that name was not given.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc("set "+name))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("unset "+name))
	return &value
}

// Switch defines name to turn the returned value on and "!"+name to turn it
// off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc("enable "+name))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable "+name))
	return &value
}

// Collect defines name to append the next argument to the returned slice, in
// command line order, and name+"." to drop the collected values.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}).Desc("add to "+name))
	Define(name+".", Func(func() {
		values = nil
	}).Desc("clear "+name))
	return &values
}
