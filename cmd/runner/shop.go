package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/usmanser71/runner-game-pro/internal/audio"
	"github.com/usmanser71/runner-game-pro/internal/session"
	"github.com/usmanser71/runner-game-pro/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List skins and your balance",
	Long: `Show the skin catalog, your coin balance and the equipped skin.

Examples:
  runner shop
  runner shop buy skin_blue
  runner shop --store savedata`,
	Args: cobra.NoArgs,
	Run:  runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <skin-id>",
	Short: "Buy and equip a skin",
	Long: `Buy a skin at its catalog price and equip it.
Every purchase is charged, including the skin you already wear.`,
	Args: cobra.ExactArgs(1),
	Run:  runShopBuy,
}

func init() {
	addProfileFlags(shopCmd)
	addProfileFlags(shopBuyCmd)
	shopCmd.AddCommand(shopBuyCmd)
}

// openShop loads the config and a host for the selected profile.
func openShop() (*backend, *session.Host, *shop.Catalog) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, "runner")

	b, err := openBackend(logger)
	if err != nil {
		fail("%v", err)
	}
	host, err := b.newHost(cfg, audio.Nop{}, newLogger(io.Discard, ""))
	if err != nil {
		b.Close()
		fail("%v", err)
	}
	if err := host.Err(); err != nil {
		b.Close()
		fail("%v", err)
	}
	return b, host, shop.NewCatalog(cfg.Shop)
}

func runShopList(_ *cobra.Command, _ []string) {
	b, host, catalog := openShop()
	defer b.Close()

	fmt.Printf("Coins: %d   Equipped: %s\n\n", host.Balance(), catalog.NameOf(host.Equipped()))
	fmt.Printf("  %-12s  %-12s  %-6s\n", "ID", "Name", "Price")
	fmt.Printf("  %-12s  %-12s  %-6s\n", "--", "----", "-----")
	for _, it := range catalog.Items() {
		mark := ""
		if it.ID == host.Equipped() {
			mark = "  (equipped)"
		}
		fmt.Printf("  %-12s  %-12s  %-6d%s\n", it.ID, it.Name, it.Price, mark)
	}
	fmt.Println()
	fmt.Println("Run 'runner shop buy <id>' to buy a skin.")
}

func runShopBuy(_ *cobra.Command, args []string) {
	b, host, catalog := openShop()
	defer b.Close()

	it, err := catalog.Buy(host, args[0])
	msg := shop.Message(it, err)
	if err != nil {
		b.Close()
		fail("%s: %v", msg, err)
	}
	if err := host.Err(); err != nil {
		b.Close()
		fail("purchase not saved: %v", err)
	}
	fmt.Printf("%s. Coins left: %d\n", msg, host.Balance())
}
