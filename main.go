package main

import "github.com/hanifadr/reimbursement-hub/cmd"

func main() {
	cmd.Execute()
}
