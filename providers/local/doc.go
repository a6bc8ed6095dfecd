// Package local provides an implementation of the aurornis.Provider interface
// for the local operating system.
//
// It serves as a thin wrapper around the standard library's "os/exec" package:
// the child gets exactly the environment built by the executor, an empty
// standard input and its own process group, so a timeout can kill the whole
// tree it started.
//
// Usage:
//
//	res, err := local.Run(ctx, []string{"echo", "ok"})
//	if err != nil {
//		t.Fatal(err)
//	}
//	_ = res.IsSuccessful()
package local
