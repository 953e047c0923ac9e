package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/hyperhyperspace/pulsar/shared"
)

func bindChallengeFlags(flags *pflag.FlagSet) {
	flags.String("challenge", "", "challenge in hex, little-endian (zero-padded to bytelen)")
	flags.String("message", "", "message the challenge is derived from by hashing")
}

func challengeFromFlags(flags *pflag.FlagSet, byteLen uint) (shared.Challenge, error) {
	challengeHex, err := flags.GetString("challenge")
	if err != nil {
		return nil, err
	}
	message, err := flags.GetString("message")
	if err != nil {
		return nil, err
	}

	switch {
	case challengeHex != "" && message != "":
		return nil, errors.New("only one of --challenge and --message can be set")
	case challengeHex != "":
		ch, err := decodeHex("challenge", challengeHex, byteLen)
		if err != nil {
			return nil, err
		}
		return shared.Challenge(ch), nil
	case message != "":
		return shared.ChallengeFromMessage([]byte(message), int(byteLen)), nil
	default:
		return nil, errors.New("one of --challenge and --message is required")
	}
}

// decodeHex decodes a little-endian value and zero-pads it to byteLen.
func decodeHex(name, s string, byteLen uint) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	if uint(len(b)) > byteLen {
		return nil, fmt.Errorf("invalid %s; expected: at most %d bytes, given: %d", name, byteLen, len(b))
	}
	padded := make([]byte, byteLen)
	copy(padded, b)
	return padded, nil
}

func printProof(w io.Writer, proof *shared.Proof) {
	fmt.Fprintf(w, "challenge:  %x\n", []byte(proof.Challenge))
	fmt.Fprintf(w, "iterations: %d\n", proof.Iterations)
	fmt.Fprintf(w, "output:     %x\n", proof.Output)
}
