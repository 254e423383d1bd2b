package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/forestrie/go-rbloom/bloom"
	"github.com/urfave/cli"
)

// hashers maps --hash names to process-wide hashers, so every filter loaded
// under the same name is compatible with the others.
var hashers = map[string]*bloom.Hasher[string]{
	"xxhash":  bloom.XXHash,
	"murmur3": bloom.Murmur3,
	"sha256":  bloom.SHA256,
}

const defaultHash = "xxhash"

func hashNames() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var hashFlag = cli.StringFlag{
	Name:  "hash",
	Value: defaultHash,
	Usage: "the hash function the filter is built with, one of: " +
		strings.Join(hashNames(), ", "),
}

func hasherByName(name string) (*bloom.Hasher[string], error) {
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q, want one of: %s",
			name, strings.Join(hashNames(), ", "))
	}
	return h, nil
}
