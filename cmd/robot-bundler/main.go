// SPDX-License-Identifier: MPL-2.0

// robot-bundler inspects and validates robot bundle metadata files.
package main

func main() {
	Execute()
}
