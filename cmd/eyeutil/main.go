package main

import "github.com/MinusGix/eyeutil/cmd/eyeutil/cmd"

func main() {
	cmd.Execute()
}
