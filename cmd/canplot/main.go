// Copyright (c) 2026 The canplot authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// canplot - CAN bus log extraction and plotting service

package main

import "canplot/internal/cli"

func main() {
	cli.Execute()
}
