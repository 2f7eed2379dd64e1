/*
Copyright © 2025 Shane Neeley
*/
package main

import "github.com/Shane-Neeley/vacuum-ballet/cmd"

func main() {
	cmd.Execute()
}
