// Command fenrir-client is a thin CLI over the reference HTTP transport:
// form-encoded /trade and /cancel requests plus a read-only /depth query.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	serverAddr := flag.String("server", "http://127.0.0.1:6060", "base URL of the exchange server")
	action := flag.String("action", "trade", "action to perform: ['trade', 'cancel', 'depth']")

	book := flag.String("book", "GOOG", "book/symbol to act on")
	orderId := flag.String("orderid", "", "order id (compulsory for trade/cancel)")
	tradeType := flag.String("tradetype", "GTC", "time in force: 'GTC' or 'FAK'")
	side := flag.String("side", "BUY", "order side: 'BUY' or 'SELL'")
	price := flag.String("price", "100", "limit price")
	quantity := flag.String("quantity", "10", "order quantity")

	flag.Parse()

	if *orderId == "" && *action != "depth" {
		fmt.Println("Error: -orderid is required for trade/cancel")
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch strings.ToLower(*action) {
	case "trade":
		err = doTrade(*serverAddr, *book, *orderId, *tradeType, *side, *price, *quantity)
	case "cancel":
		err = doCancel(*serverAddr, *book, *orderId)
	case "depth":
		err = doDepth(*serverAddr, *book)
	default:
		log.Fatalf("unknown action: %s", *action)
	}
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
}

func doTrade(server, book, orderId, tradeType, side, price, quantity string) error {
	resp, err := http.PostForm(server+"/trade", url.Values{
		"book":      {book},
		"orderid":   {orderId},
		"tradetype": {tradeType},
		"side":      {side},
		"price":     {price},
		"quantity":  {quantity},
	})
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func doCancel(server, book, orderId string) error {
	resp, err := http.PostForm(server+"/cancel", url.Values{
		"book":    {book},
		"orderid": {orderId},
	})
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func doDepth(server, book string) error {
	resp, err := http.Get(server + "/depth?book=" + url.QueryEscape(book))
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty map[string]any
	if json.Unmarshal(body, &pretty) == nil {
		encoded, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Printf("-> [%d] %s\n", resp.StatusCode, encoded)
		return nil
	}
	fmt.Printf("-> [%d] %s\n", resp.StatusCode, body)
	return nil
}
