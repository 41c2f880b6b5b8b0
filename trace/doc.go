// Package trace implements the trace database: loading a recorded
// graphics-API trace from disk and presenting it as zones, frames, and an
// ordered event stream ready for translation.
//
// A trace is a JSON document produced by an external capture tool:
//
//	{
//	  "name": "my-app",
//	  "zones": [
//	    {
//	      "id": 1, "name": "main", "type": "script",
//	      "events": [
//	        {"name": "WebGLRenderingContext#bindBuffer", "time": 120.5,
//	         "args": {"target": 34962, "buffer": {"$handle": 7}}}
//	      ],
//	      "frames": [{"number": 0, "startTime": 100, "endTime": 116.6}]
//	    }
//	  ]
//	}
//
// Argument values are JSON scalars, null, a virtual-handle reference
// ({"$handle": N}), a binary typed array ({"$type": "uint16",
// "$data": [...]}), or a string-keyed object (for example the
// attribute-location map recorded with linkProgram).
//
// Virtual handles are integers that only have meaning inside the trace.
// Handle namespaces are per resource kind: a buffer handle 7 and a texture
// handle 7 name unrelated resources. The replay side maps virtual handles
// to driver-assigned object names; see the replay package.
package trace
