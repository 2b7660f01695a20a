package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Drives the full storefront flow against a running server and prints a
// pass/fail summary: browse, filter, log in, fill the cart, check out and
// read back the order history.

type client struct {
	base  string
	token string
	http  *http.Client
}

func main() {
	base := flag.String("addr", "http://localhost:8080", "server base URL")
	flag.Parse()

	c := &client{base: *base, http: &http.Client{Timeout: 5 * time.Second}}

	passed, failed := 0, 0
	check := func(name string, err error) {
		if err != nil {
			failed++
			log.Printf("FAIL %s: %v", name, err)
			return
		}
		passed++
		log.Printf("ok   %s", name)
	}

	start := time.Now()

	check("health", c.expectStatus(http.MethodGet, "/health", nil, http.StatusOK))
	check("list books", c.expectStatus(http.MethodGet, "/api/books", nil, http.StatusOK))
	check("filter by category", c.expectStatus(http.MethodGet, "/api/books?category=Fantasy", nil, http.StatusOK))
	check("search", c.expectStatus(http.MethodGet, "/api/books?q=orwell", nil, http.StatusOK))

	check("login", c.expectStatus(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "smoke@bookstore.com",
		"password": "secret",
	}, http.StatusOK))

	check("add to cart", c.expectStatus(http.MethodPost, "/api/cart/items", map[string]interface{}{
		"book_id":  "1",
		"quantity": 2,
	}, http.StatusOK))
	check("merge same book", c.expectStatus(http.MethodPost, "/api/cart/items", map[string]interface{}{
		"book_id":  "1",
		"quantity": 1,
	}, http.StatusOK))
	check("update quantity", c.expectStatus(http.MethodPut, "/api/cart/items/1", map[string]interface{}{
		"quantity": 1,
	}, http.StatusOK))

	check("checkout", c.expectStatus(http.MethodPost, "/api/checkout", nil, http.StatusCreated))
	check("cart cleared", c.expectStatus(http.MethodPost, "/api/checkout", nil, http.StatusConflict))
	check("order history", c.expectStatus(http.MethodGet, "/api/orders", nil, http.StatusOK))

	check("admin gate holds", c.expectStatus(http.MethodGet, "/api/admin/orders", nil, http.StatusForbidden))

	fmt.Printf("\n=== smoke results ===\n")
	fmt.Printf("passed:  %d\n", passed)
	fmt.Printf("failed:  %d\n", failed)
	fmt.Printf("elapsed: %v\n", time.Since(start))

	if failed > 0 {
		log.Fatal("smoke test failed")
	}
}

func (c *client) expectStatus(method, path string, body interface{}, want int) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Session-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if token := resp.Header.Get("X-Session-Token"); token != "" {
		c.token = token
	}

	if resp.StatusCode != want {
		return fmt.Errorf("%s %s: got %d, want %d", method, path, resp.StatusCode, want)
	}
	return nil
}
