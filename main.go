package main

import "github.com/Carmen-Shannon/oxy-portfolio/cmd"

func main() {
	cmd.Execute()
}
