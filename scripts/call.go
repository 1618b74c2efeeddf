// One-shot caller for a running server: posts a single operation to
// /v1/call and prints the response body.
//
//	go run scripts/call.go -op create_account -args '{"initial_balance": 5}'
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8080", "server base URL")
	op := flag.String("op", "", "operation name")
	args := flag.String("args", "{}", "operation arguments as a JSON object")
	flag.Parse()

	if *op == "" {
		fmt.Fprintln(os.Stderr, "usage: call -op <operation> [-args '{...}']")
		os.Exit(2)
	}
	arguments := map[string]any{}
	if err := json.Unmarshal([]byte(*args), &arguments); err != nil {
		fmt.Fprintln(os.Stderr, "-args must be a JSON object:", err)
		os.Exit(2)
	}
	body, _ := json.Marshal(map[string]any{
		"operation": *op,
		"arguments": arguments,
	})

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(*addr+"/v1/call", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "request failed:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Write(raw)
	}
	fmt.Println(pretty.String())
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
