package main

var buildVersion = "dev"

func main() {
	execute(buildVersion)
}
