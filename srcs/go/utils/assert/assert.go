package assert

import (
	"fmt"
	"runtime"
)

// Failure is the panic value raised by a failed assertion.
type Failure struct {
	Name string
	Loc  string
	Msg  string
}

func (f *Failure) Error() string {
	if len(f.Msg) > 0 {
		return fmt.Sprintf("%s failed at %s: %s", f.Name, f.Loc, f.Msg)
	}
	return fmt.Sprintf("%s failed at %s", f.Name, f.Loc)
}

func fail(name, format string, v ...interface{}) {
	_, fn, line, _ := runtime.Caller(2)
	panic(&Failure{
		Name: name,
		Loc:  fmt.Sprintf("%s:%d", fn, line),
		Msg:  fmt.Sprintf(format, v...),
	})
}

func OK(err error) {
	if err != nil {
		fail(`assertOK`, "%v", err)
	}
}

func True(ok bool) {
	if !ok {
		fail(`assertTrue`, "")
	}
}

// Truef is True with a message describing the violated condition.
func Truef(ok bool, format string, v ...interface{}) {
	if !ok {
		fail(`assertTrue`, format, v...)
	}
}
