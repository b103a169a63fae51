package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base = flag.String("base", "https://github.com/OCharnyshevich/hexworld-rulesets.git", "base url")
		set  = flag.String("set", "default", "ruleset set to fetch")
		out  = flag.String("o", "./rulesets", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *set == "" {
		panic("ruleset set required")
	}

	path := fmt.Sprintf("%s/%s", *out, *set)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading ruleset %s", path)

	url := fmt.Sprintf("git::%s//rulesets/%s", *base, *set)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading ruleset %s", path)
}
