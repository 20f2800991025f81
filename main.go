// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/cargoship/cargoship/cmd/cargoship"

func main() {
	cmd.Execute()
}
