// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the script must return a table, e.g.
//
//   return {
//       data_directory = ".",
//       pidfile = "carrierd.pid",
//       database = { directory = "data", name = "carrier.leveldb" },
//       maintenance = { prune_interval = 60, report_interval = 300, routes = { "north" } },
//       limits = { info_length = 64 },
//       fee = { per_byte = 1, per_record = 100 },
//       operators = { "<hex seed>" },
//       logging = { directory = "log", file = "carrier.log" },
//   }
package configuration
