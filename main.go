package main

import "github.com/urlhaus-mcp/urlhaus-mcp/cmd"

func main() {
	cmd.Execute()
}
