package main

import "github.com/mimicsh/mimicsh/cmd"

func main() {
	cmd.Execute()
}
