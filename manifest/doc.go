// Package manifest declares custom commands in YAML or HCL files instead of Go code.
//
// A manifest lists commands with their parameters. Run handlers stay in Go and are matched to
// commands by name when the manifest is bound to a commands.Registrar.
//
// YAML:
//
//	commands:
//	  - name: demo:paint
//	    description: Paint the block you are looking at
//	    permission: gameDirectors
//	    parameters:
//	      - name: colour
//	        type: enum
//	        values: [red, green, blue]
//	      - name: radius
//	        type: integer
//	        optional: true
//
// HCL:
//
//	command "demo:paint" {
//	  description = "Paint the block you are looking at"
//	  permission  = "gameDirectors"
//
//	  param "colour" {
//	    type   = "enum"
//	    values = ["red", "green", "blue"]
//	  }
//	  param "radius" {
//	    type     = "integer"
//	    optional = true
//	  }
//	}
//
// Loading and binding:
//
//	doc, err := manifest.LoadFile("commands.yaml")
//	if err != nil {
//	    return err
//	}
//	err = manifest.Bind(doc, registrar, map[string]stylish.RunFunc{
//	    "demo:paint": paint,
//	})
//
// Every document is validated against Schema before it is returned. Failures are reported as
// *Error carrying the source name.
package manifest
