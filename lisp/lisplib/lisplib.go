// Package lisplib is used to conveniently load the standard library into an
// environment.
package lisplib

import (
	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libhttp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libjson"
	"github.com/nicferrier/nicrisp/lisp/lisplib/liblist"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libmath"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libregexp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libstring"
)

// LoadLibrary loads the standard library into env using the default http
// client.
func LoadLibrary(env *lisp.LEnv) error {
	return Loader()(env)
}

// Loader returns a lisp.Loader for the standard library which configures
// the http package with httpOpts.
func Loader(httpOpts ...libhttp.Option) lisp.Loader {
	return func(env *lisp.LEnv) error {
		err := libmath.LoadPackage(env)
		if err != nil {
			return err
		}
		err = liblist.LoadPackage(env)
		if err != nil {
			return err
		}
		err = libstring.LoadPackage(env)
		if err != nil {
			return err
		}
		err = libregexp.LoadPackage(env)
		if err != nil {
			return err
		}
		err = libjson.LoadPackage(env)
		if err != nil {
			return err
		}
		return libhttp.LoadPackage(env, httpOpts...)
	}
}
