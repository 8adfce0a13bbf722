package securestring_test

import (
	"fmt"

	"github.com/guyacosta/securestring"
)

func Example() {
	p, err := securestring.New()
	if err != nil {
		panic(err)
	}
	defer p.Close()

	// Sensitive input arrives as bytes (from a prompt, a socket, a file)
	password := []byte("correct horse battery staple")

	value, err := p.Protect(securestring.NewBuffer(password))
	if err != nil {
		panic(err)
	}
	defer value.Dispose()

	// The source was erased the moment the protected form existed
	fmt.Println("source byte:", password[0])
	fmt.Println("length:", value.Len())

	// Reveal only when cleartext is required, and erase right after
	buf, err := p.Reveal(value)
	if err != nil {
		panic(err)
	}
	fmt.Println("revealed:", string(buf.Bytes()))
	buf.Erase()

	// Output:
	// source byte: 0
	// length: 28
	// revealed: correct horse battery staple
}

func Example_compare() {
	p, _ := securestring.New()
	defer p.Close()

	stored, _ := p.Protect(securestring.NewBufferFromString("hunter2"))
	attempt, _ := p.Protect(securestring.NewBufferFromString("hunter2"))

	// Constant-time comparison; no cleartext reaches this scope
	same, err := p.Equal(stored, attempt)
	if err != nil {
		panic(err)
	}
	fmt.Println("match:", same)

	// Output: match: true
}

func Example_digest() {
	p, _ := securestring.New()
	defer p.Close()

	value, _ := p.Protect(securestring.NewBufferFromString("abc"))

	sum, err := p.Digest(value)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)

	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
