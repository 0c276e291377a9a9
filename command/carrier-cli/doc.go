// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Operator command line for a local carrier market database
//
// every command except generate and version reads a Lua configuration
// file and opens the database it names, results are printed as JSON
//
// e.g. to offer a demand from an operator identity:
//
//   carrier-cli -c carrier.conf demand -o <identity> -e 1600000000 -r 10 -s 3 -V 5000 -i 0011223344...
package main
