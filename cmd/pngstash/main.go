/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/pngstash/pngstash/cmd/pngstash/cmd"
)

func main() {
	cmd.Execute()
}
