// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist evaluates Student's t and F distributions from the command line.
//
// pdf, cdf, and quantile read newline-separated numbers from stdin and
// print one result per line, to --digits significant digits. For
// example,
//
//	$ printf '0\n1\n2.5\n' | dist cdf --dist t --dof 5
//	0.5
//	0.818391
//	0.972755
//
// rand prints random variates, and describe prints the moments,
// bounds, and quantiles of a distribution followed by a plot of its
// density:
//
//	$ dist describe --dist f --dof1 5 --dof2 10
//	F(5, 10)  mean 1.25  variance 1.35417  bounds [0, 10.4807]
//
//	     min 0
//	   1%ile 0.0994924
//	   5%ile 0.21119
//	   ...
//	  median 0.931933
//	   ...
//
// Flags may also be given in a TOML, YAML, or JSON file named by
// --config, or as DIST_* environment variables.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
