// Package simhost provides an in-memory host runtime.
//
// It implements [stylish.Host] and the host registries, records every registration and
// subscription it receives, and lets callers fire the lifecycle triggers and generic events the
// way a real runtime would. Tests and the interactive simulator use it in place of a game host.
//
//	host := simhost.New()
//	shim.Default().Init(host)
//
//	if err := host.Startup(); err != nil {
//	    log.Fatal(err)
//	}
//	host.WorldLoad("overworld")
//	e := host.UseItem("player:steve", "demo:wand")
//	fmt.Println(e.Cancel)
package simhost
