// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tabledef loads table definitions from YAML, TOML or HCL files
// and builds them into tables.
//
// A YAML definition looks like this:
//
//	title: Services
//	header_style: bold
//	columns:
//	  - header: Name
//	  - header: Latency
//	    align: right
//	    dtype: float
//	rows:
//	  - cells: [api, 12.5]
//	  - cells: [db, 80.25]
//	    style: red
//
// TOML uses the same keys with [[columns]] and [[rows]] tables. HCL uses
// "column" blocks labelled with the header and "row" blocks with a
// "cells" list.
package tabledef
