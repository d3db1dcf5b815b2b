package main

import "github.com/pingfanfan/FundingCall-UK/internal/cli"

func main() {
	cli.Execute()
}
