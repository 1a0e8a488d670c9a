package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/sandeepkv93/tasklists/internal/testsupport"
)

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
