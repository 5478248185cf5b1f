// Package hcl implements config.Loader for HCL fleet definitions. The
// document is a sequence of labelled environment blocks:
//
//	environment "dev" {
//	  node "sensor" {
//	    root_node = true
//	    qty       = 2
//	    publisher "img" {
//	      msg_size  = 100
//	      bandwidth = 50
//	    }
//	  }
//	}
//
// Numeric attributes are decoded as expressions, so derived values like
// `qty = 2 * 4` evaluate before they reach the model.
package hcl
