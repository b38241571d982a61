package check

import (
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/pkg/errors"

	"github.com/anacrolix/argseq"
)

var typeParseFuncs = map[reflect.Type]func(s string) (reflect.Value, error){}

// Registers f, a func(string) T or func(string) (T, error), as the parser
// for T.
func addParseFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	typeParseFuncs[t.Out(0)] = func(s string) (reflect.Value, error) {
		out := v.Call([]reflect.Value{reflect.ValueOf(s)})
		if len(out) > 1 {
			if i := out[1].Interface(); i != nil {
				return out[0], i.(error)
			}
		}
		return out[0], nil
	}
}

func init() {
	addParseFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addParseFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addParseFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addParseFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, errors.Errorf("bad IP address: %q", s)
		}
		return ip, nil
	})
	addParseFunc(func(s string) (b Bytes, err error) {
		err = b.Set(s)
		return
	})
}

// Converts the option's text to T using the registered parser for T. ok is
// false if the option is absent.
func As[T any](o argseq.Option) (ret T, ok bool, err error) {
	if o.IsAbsent() {
		return
	}
	s, isText := text(o)
	if !isText {
		err = argseq.InvalidValuef("option %q: expected a value, got %s", o.Name, o.Kind())
		return
	}
	f, found := typeParseFuncs[reflect.TypeOf(&ret).Elem()]
	if !found {
		panic("no parser registered for " + reflect.TypeOf(&ret).Elem().String())
	}
	v, err := f(s)
	if err != nil {
		err = invalid(o.Name, err)
		return
	}
	return v.Interface().(T), true, nil
}

func URL(o argseq.Option) (*url.URL, error) {
	u, _, err := As[*url.URL](o)
	return u, err
}

func TCPAddr(o argseq.Option) (*net.TCPAddr, error) {
	a, _, err := As[*net.TCPAddr](o)
	return a, err
}

func IP(o argseq.Option) (net.IP, error) {
	ip, _, err := As[net.IP](o)
	return ip, err
}

// A plain number is taken as seconds, anything else is parsed with
// time.ParseDuration.
func Duration(o argseq.Option, def time.Duration) (time.Duration, error) {
	if u, ok := o.Uint(); ok {
		return time.Duration(u) * time.Second, nil
	}
	d, ok, err := As[time.Duration](o)
	if err != nil || !ok {
		return def, err
	}
	return d, nil
}
