package main

import "gitlab.com/HydrusAPI/HydrusAPI/cmd"

func main() {
	cmd.Execute()
}
