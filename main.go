package main

import "github.com/marlowhealth/compass_backend/cmd"

func main() {
	cmd.Execute()
}
