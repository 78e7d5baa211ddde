package main

import "github.com/frahmantamala/asaas-go/cmd"

func main() {
	cmd.Execute()
}
