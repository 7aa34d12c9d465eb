package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
)

// envelope is the response body shared by every endpoint
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type account struct {
	ID             uint64 `json:"id"`
	AccountName    string `json:"account_name"`
	AccountBalance string `json:"account_balance"`
}

// Scenario is one balance change fired at the account
type Scenario struct {
	Name   string
	Path   string // deposit | withdraw
	Amount decimal.Decimal
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     Scenario
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of balance changes")
	userID := flag.Uint64("u", 1, "User id to authenticate as")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("AL_AUTH_JWT_SECRET"), "JWT signing secret")
	issuer := flag.String("issuer", "account-ledger", "JWT issuer")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Println("a JWT secret is required (-secret or AL_AUTH_JWT_SECRET)")
		os.Exit(2)
	}

	token, err := middleware.IssueToken(middleware.AuthConfig{Secret: []byte(*secret), Issuer: *issuer}, *userID, time.Hour)
	if err != nil {
		fmt.Printf("failed to sign token: %v\n", err)
		os.Exit(2)
	}

	c := &client{baseURL: *baseURL, token: token, http: &http.Client{Timeout: 10 * time.Second}}

	name := fmt.Sprintf("load-%d", time.Now().UnixNano())
	initial := decimal.RequireFromString("1000.00")
	acc, err := c.createAccount(name, initial)
	if err != nil {
		fmt.Printf("failed to create account: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created account %d (%s) with balance %s\n", acc.ID, acc.AccountName, acc.AccountBalance)

	scenarios := []Scenario{
		{"Deposit Small", "deposit", decimal.RequireFromString("1.10")},
		{"Deposit Large", "deposit", decimal.RequireFromString("25.00")},
		{"Withdraw Small", "withdraw", decimal.RequireFromString("0.35")},
		{"Withdraw Large", "withdraw", decimal.RequireFromString("12.50")},
	}

	fmt.Printf("Concurrency: %d goroutines, %d requests\n", *concurrency, *totalRequests)

	jobs := make(chan Scenario, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- scenarios[rand.Intn(len(scenarios))]
	}
	close(jobs)

	results := make(chan TestResult, *totalRequests)
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				results <- c.changeBalance(acc.ID, s)
			}
		}()
	}
	wg.Wait()
	close(results)
	elapsed := time.Since(start)

	expected := initial
	var times []time.Duration
	failed := 0
	errorCounts := make(map[string]int)
	for r := range results {
		times = append(times, r.ResponseTime)
		if !r.Success {
			failed++
			errorCounts[r.Error.Error()]++
			continue
		}
		if r.Scenario.Path == "deposit" {
			expected = expected.Add(r.Scenario.Amount)
		} else {
			expected = expected.Sub(r.Scenario.Amount)
		}
	}

	final, err := c.balanceOf(acc.ID)
	if err != nil {
		fmt.Printf("failed to read final balance: %v\n", err)
		os.Exit(1)
	}

	printResults(*totalRequests, failed, elapsed, times, errorCounts)

	fmt.Println("\n================= CONSISTENCY =================")
	fmt.Printf("Expected balance: %s\n", expected.StringFixed(2))
	fmt.Printf("Stored balance:   %s\n", final.StringFixed(2))
	if !final.Equal(expected) {
		fmt.Println("❌ LOST UPDATE DETECTED")
		os.Exit(1)
	}
	fmt.Println("✅ Every committed change is reflected in the balance")
}

func (c *client) do(method, path string, body any) (*envelope, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return &env, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, env.Message)
	}
	return &env, resp.StatusCode, nil
}

func (c *client) createAccount(name string, amount decimal.Decimal) (*account, error) {
	env, _, err := c.do(http.MethodPost, "/api/v1/accounts", map[string]string{
		"name":           name,
		"amount":         amount.StringFixed(2),
		"account_number": name,
	})
	if err != nil {
		return nil, err
	}
	var acc account
	return &acc, json.Unmarshal(env.Data, &acc)
}

func (c *client) changeBalance(accountID uint64, s Scenario) TestResult {
	started := time.Now()
	_, status, err := c.do(http.MethodPatch, fmt.Sprintf("/api/v1/accounts/%d/%s", accountID, s.Path), map[string]string{
		"amount": s.Amount.StringFixed(2),
	})
	return TestResult{
		Scenario:     s,
		Success:      err == nil,
		ResponseTime: time.Since(started),
		StatusCode:   status,
		Error:        err,
	}
}

func (c *client) balanceOf(accountID uint64) (decimal.Decimal, error) {
	env, _, err := c.do(http.MethodGet, "/api/v1/accounts", nil)
	if err != nil {
		return decimal.Zero, err
	}
	var accounts []account
	if err := json.Unmarshal(env.Data, &accounts); err != nil {
		return decimal.Zero, err
	}
	for _, a := range accounts {
		if a.ID == accountID {
			return decimal.NewFromString(a.AccountBalance)
		}
	}
	return decimal.Zero, fmt.Errorf("account %d not in list", accountID)
}

func printResults(total, failed int, elapsed time.Duration, times []time.Duration, errorCounts map[string]int) {
	slices.Sort(times)
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Failed Requests:     %d\n", failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("TPS:                 %.2f\n", float64(total-failed)/elapsed.Seconds())
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P95 Response:        %v\n", percentile(95))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	if failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
