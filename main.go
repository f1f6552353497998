package main

import "github.com/cubekit-dev/cubekit/cmd"

func main() {
	cmd.Execute()
}
