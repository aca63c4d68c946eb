package uuid

import (
	gonanoid "github.com/matoous/go-nanoid"
)

// UUIDGenerator .
type UUIDGenerator interface {
	Generate() (string, error)
}

// NanoIDGenerator UUIDGenerator implementation using nanoid
type NanoIDGenerator struct {
	Length int
}

// NewNanoIDGenerator .
func NewNanoIDGenerator(length int) *NanoIDGenerator {
	if length < 1 {
		panic("length must be larger than 1")
	}
	return &NanoIDGenerator{Length: length}
}

// Generate generate an ID
func (ns *NanoIDGenerator) Generate() (string, error) {
	uuid, err := gonanoid.Nanoid(ns.Length)
	if err != nil {
		return "", err
	}
	return uuid, err
}
