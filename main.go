package main

import "book-my-property/cmd"

func main() {
	cmd.Execute()
}
