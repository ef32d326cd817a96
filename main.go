/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/hance08/ynab2splitwise/cmd"
)

func main() {
	cmd.Execute()
}
