package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"zk-falcon/circuits"
	"zk-falcon/cs"
	"zk-falcon/cs/bn254"
	"zk-falcon/falcon"
)

func usage() {
	fmt.Println(`usage: zkfalcon <fixture|check> [options]

Subcommands:
  fixture  Generate a deterministic key/signature pair and write
           ./falcon_keys/{public,signature}.json
           Flags:
             -n    <512|1024>  ring dimension (default: 512)
             -seed <string>    fixture seed (default: "zkfalcon fixture")
             -m    <string>    message to sign (default: "zkfalcon message")
             -out  <dir>       output directory (default: ./falcon_keys)

  check    Verify a fixture in cleartext, then rebuild and evaluate the
           requested verification circuits over it
           Flags:
             -keys    <dir>    fixture directory; empty generates in memory
             -n       <512|1024>  ring dimension when generating (default: 512)
             -seed    <string>    fixture seed when generating
             -m       <string>    message when generating
             -variant <name>   schoolbook|ntt|dualntt|all (default: all)`)
	os.Exit(1)
}

type builder struct {
	name  string
	build func(cs.System, *falcon.PublicKey, []byte, *falcon.Signature) ([]*big.Int, error)
}

var builders = []builder{
	{"schoolbook", circuits.Schoolbook},
	{"ntt", circuits.NTT},
	{"dualntt", circuits.DualNTT},
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "fixture":
		runFixture(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		usage()
	}
}

func runFixture(args []string) {
	fs := flag.NewFlagSet("fixture", flag.ExitOnError)
	n := fs.Int("n", 512, "ring dimension: 512|1024")
	seed := fs.String("seed", "zkfalcon fixture", "fixture seed")
	msg := fs.String("m", "zkfalcon message", "message string")
	out := fs.String("out", "falcon_keys", "output directory")
	fs.Parse(args)

	par, err := falcon.NewParams(*n)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	pk, sig, err := falcon.GenerateTestVector([]byte(*seed), []byte(*msg), par)
	if err != nil {
		log.Fatalf("fixture: %v", err)
	}
	if err := falcon.Verify(pk, []byte(*msg), sig); err != nil {
		log.Fatalf("fixture self-check: %v", err)
	}
	if err := falcon.SaveTestVector(*out, pk, sig, []byte(*msg)); err != nil {
		log.Fatalf("save fixture: %v", err)
	}
	fmt.Println("Public key:", *out+"/public.json")
	fmt.Println("Signature:", *out+"/signature.json")
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	keys := fs.String("keys", "", "fixture directory; empty generates in memory")
	n := fs.Int("n", 512, "ring dimension when generating")
	seed := fs.String("seed", "zkfalcon fixture", "fixture seed when generating")
	msg := fs.String("m", "zkfalcon message", "message string when generating")
	variant := fs.String("variant", "all", "schoolbook|ntt|dualntt|all")
	fs.Parse(args)

	switch *variant {
	case "all", "schoolbook", "ntt", "dualntt":
	default:
		log.Fatalf("unknown variant %q", *variant)
	}

	var (
		pk      *falcon.PublicKey
		sig     *falcon.Signature
		message []byte
		err     error
	)
	if *keys != "" {
		pk, sig, message, err = falcon.LoadTestVector(*keys)
		if err != nil {
			log.Fatalf("load fixture: %v", err)
		}
	} else {
		par, errPar := falcon.NewParams(*n)
		if errPar != nil {
			log.Fatalf("params: %v", errPar)
		}
		pk, sig, err = falcon.GenerateTestVector([]byte(*seed), []byte(*msg), par)
		if err != nil {
			log.Fatalf("fixture: %v", err)
		}
		message = []byte(*msg)
	}

	if err := falcon.Verify(pk, message, sig); err != nil {
		log.Fatalf("cleartext verify: %v", err)
	}
	fmt.Printf("cleartext verify: ok (n=%d)\n", 1<<pk.LogN)

	for _, b := range builders {
		if *variant != "all" && *variant != b.name {
			continue
		}
		sys := bn254.NewSystem()
		start := time.Now()
		publics, err := b.build(sys, pk, message, sig)
		if err != nil {
			log.Fatalf("%s: build: %v", b.name, err)
		}
		build := time.Since(start)
		start = time.Now()
		ok, err := sys.IsSatisfiable(publics)
		if err != nil {
			log.Fatalf("%s: evaluate: %v", b.name, err)
		}
		eval := time.Since(start)
		if !ok {
			log.Fatalf("%s: constraint system unsatisfied", b.name)
		}
		lin, mul, rng := sys.Counts()
		fmt.Printf("%s: ok constraints=%d (lin=%d mul=%d range=%d) witness=%d public=%d build=%s eval=%s\n",
			b.name, sys.NumConstraints(), lin, mul, rng, sys.NumWitness(), sys.NumPublic(), build, eval)
	}
}
