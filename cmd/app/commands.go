package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/eventlog"
	"github.com/osse101/GachaTrip_Go/internal/profile"
)

var errUsage = errors.New("invalid arguments")

// simpleCommand adapts a function to the Command interface
type simpleCommand struct {
	name  string
	usage string
	desc  string
	run   func(ctx context.Context, args []string) error
}

func (c *simpleCommand) Name() string        { return c.name }
func (c *simpleCommand) Usage() string       { return c.usage }
func (c *simpleCommand) Description() string { return c.desc }

func (c *simpleCommand) Run(ctx context.Context, args []string) error {
	return c.run(ctx, args)
}

// app holds what the commands act on
type app struct {
	svc           profile.Service
	history       eventlog.Service
	retentionDays int
	ui            *ui
}

func usageError(usage string) error {
	return fmt.Errorf("%w, usage: %s %s", errUsage, appName, usage)
}

// registerCommands adds every player command to r
func registerCommands(r *Registry, a *app) {
	for _, cmd := range []*simpleCommand{
		{"status", "status", "Show level, streak and collection totals", a.status},
		{"collect", "collect <title> <county> [category] [duration]", "Collect a destination or check in again", a.collect},
		{"pull", "pull [n]", "Draw n destinations from the gacha pool", a.pull},
		{"fav", "fav <id>", "Toggle favorite on an item", a.toggle(profile.Service.ToggleFavorite, "favorite")},
		{"block", "block <id>", "Toggle blacklist on an item", a.toggle(profile.Service.ToggleBlacklist, "blacklist")},
		{"unmark", "unmark <id>", "Remove an item from favorites or blacklist", a.toggle(profile.Service.Unmark, "mark")},
		{"groups", "groups", "List the collection grouped by county and category", a.groups},
		{"lists", "lists", "Show favorites and blacklist", a.lists},
		{"search", "search <query> [limit]", "Fuzzy search collected items", a.search},
		{"grant", "grant <amount>", "Grant XP manually", a.grant},
		{"claim", "claim", "Claim the daily login bonus", a.claim},
		{"box", "box [add <name> [kind]]", "List the item box or add an item", a.box},
		{"redeem", "redeem <id>", "Redeem an item box entry", a.redeem},
		{"sweep", "sweep", "Remove expired item box entries", a.sweep},
		{"achievements", "achievements", "List achievements", a.achievements},
		{"odds", "odds", "Show gacha odds by rarity", a.odds},
		{"history", "history [n] | history prune [days]", "Show recent activity or drop old entries", a.showHistory},
	} {
		r.Register(cmd)
	}
}

func (a *app) status(_ context.Context, _ []string) error {
	p := a.svc.Level()
	totals := a.svc.Totals()

	a.ui.Header(fmt.Sprintf("Profile %s", a.svc.ID()))
	if p.MaxedOut {
		a.ui.Line("Level %d (%s), %d XP, max level", p.Level, p.Tier.Name, p.TotalXP)
	} else {
		a.ui.Line("Level %d (%s), %d XP, %d/%d to next (%.1f%%)",
			p.Level, p.Tier.Name, p.TotalXP, p.XPIntoLevel, p.XPForNextLevel, p.ProgressPercent)
	}
	a.ui.Line("Streak: %d day(s)", a.svc.Streak())
	a.ui.Line("Items: %d, check-ins: %d, counties: %d, favorites: %d, blacklisted: %d",
		totals.Items, totals.CheckIns, totals.Counties, totals.Favorites, totals.Blacklisted)
	return nil
}

func (a *app) collect(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("collect <title> <county> [category] [duration]")
	}
	entry := domain.CollectionEntry{Title: args[0], County: args[1]}
	if len(args) > 2 {
		entry.Category = args[2]
	}
	if len(args) > 3 {
		entry.Duration = args[3]
	}

	res, grant, err := a.svc.Collect(ctx, entry)
	if err != nil {
		return err
	}
	a.printCollect(res)
	a.printGrant(grant)
	return nil
}

func (a *app) pull(ctx context.Context, args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return usageError("pull [n]")
		}
		n = v
	}

	res, err := a.svc.Pull(ctx, n)
	if res != nil {
		for i, d := range res.Destinations {
			a.ui.Info("[%s] %s", d.Rarity, d.Title)
			a.printCollect(res.Results[i])
		}
		a.printGrant(res.Grant)
	}
	return err
}

func (a *app) toggle(apply func(profile.Service, context.Context, string) (domain.CollectionItem, bool, error), what string) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: item id required", errUsage)
		}
		item, ok, err := apply(a.svc, ctx, args[0])
		if err != nil {
			return err
		}
		if !ok {
			a.ui.Warning("No item with id %s", args[0])
			return nil
		}
		a.ui.Success("%s: %s is now %s", what, item.Title, markLabel(item.Mark))
		return nil
	}
}

func (a *app) groups(_ context.Context, _ []string) error {
	groups := a.svc.Grouped()
	if len(groups) == 0 {
		a.ui.Info("Nothing collected yet")
		return nil
	}
	for _, county := range groups {
		a.ui.Header(fmt.Sprintf("[%s] %s (%d)", county.ShortName, county.County, county.TotalLocations))
		for _, category := range county.Categories {
			a.ui.Line("  %s (%d)", category.Name, category.Count)
			for _, item := range category.Items {
				a.ui.Line("    %s  x%d  %s", item.Title, item.CheckInCount, item.ID)
			}
		}
	}
	return nil
}

func (a *app) lists(_ context.Context, _ []string) error {
	a.ui.Header("Favorites")
	for _, item := range a.svc.Favorites() {
		a.ui.Line("  %s (%s)  %s", item.Title, item.County, item.ID)
	}
	a.ui.Header("Blacklist")
	for _, item := range a.svc.Blacklisted() {
		a.ui.Line("  %s (%s)  %s", item.Title, item.County, item.ID)
	}
	return nil
}

func (a *app) search(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <query> [limit]")
	}
	limit := 10
	if len(args) > 1 {
		v, err := strconv.Atoi(args[len(args)-1])
		if err == nil {
			limit = v
			args = args[:len(args)-1]
		}
	}

	found := a.svc.Search(strings.Join(args, " "), limit)
	if len(found) == 0 {
		a.ui.Info("No matches")
		return nil
	}
	for _, item := range found {
		a.ui.Line("%s (%s)  %s", item.Title, item.County, item.ID)
	}
	return nil
}

func (a *app) grant(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("grant <amount>")
	}
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return usageError("grant <amount>")
	}

	grant, err := a.svc.GrantXP(ctx, amount, profile.XPSourceManual)
	if err != nil {
		return err
	}
	a.printGrant(grant)
	return nil
}

func (a *app) claim(ctx context.Context, _ []string) error {
	result, err := a.svc.ClaimDailyLogin(ctx)
	if err != nil {
		return err
	}
	if !result.Success {
		a.ui.Warning("%s (streak %d)", result.Message, result.Streak)
		return nil
	}
	a.ui.Success("%s: +%d XP, streak %d", result.Message, result.XPGained, result.Streak)
	if result.Grant != nil {
		a.printGrant(*result.Grant)
	}
	return nil
}

func (a *app) box(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "add" || len(args) < 2 {
			return usageError("box [add <name> [kind]]")
		}
		kind := ""
		if len(args) > 2 {
			kind = args[2]
		}
		item, err := a.svc.AddBoxItem(ctx, args[1], kind)
		if err != nil {
			return err
		}
		a.ui.Success("Added %s  %s", item.Name, item.ID)
		return nil
	}

	items := a.svc.BoxItems()
	if len(items) == 0 {
		a.ui.Info("Item box is empty")
		return nil
	}
	for _, item := range items {
		state := "unused"
		if item.ExpiresAt != nil {
			state = "redeemed, gone at " + item.ExpiresAt.Format("15:04")
		}
		a.ui.Line("%s [%s] %s  %s", item.Name, item.Kind, state, item.ID)
	}
	return nil
}

func (a *app) redeem(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("redeem <id>")
	}
	item, ok, err := a.svc.RedeemBoxItem(ctx, args[0])
	if err != nil {
		return err
	}
	if !ok {
		a.ui.Warning("No unredeemed item with id %s", args[0])
		return nil
	}
	a.ui.Success("Redeemed %s", item.Name)
	return nil
}

func (a *app) sweep(ctx context.Context, _ []string) error {
	n, err := a.svc.SweepExpired(ctx)
	if err != nil {
		return err
	}
	a.ui.Success("Removed %d expired item(s)", n)
	return nil
}

func (a *app) achievements(_ context.Context, _ []string) error {
	list := a.svc.Achievements()
	earned := 0
	for _, ach := range list {
		mark := " "
		if ach.Earned {
			mark = "x"
			earned++
		}
		a.ui.Line("[%s] %s %s: %s", mark, ach.Icon, ach.Name, ach.Description)
	}
	a.ui.Info("%d/%d earned", earned, len(list))
	return nil
}

func (a *app) odds(_ context.Context, _ []string) error {
	odds := a.svc.Odds()
	rarities := make([]domain.Rarity, 0, len(odds))
	for r := range odds {
		rarities = append(rarities, r)
	}
	sort.Slice(rarities, func(i, j int) bool { return odds[rarities[i]] > odds[rarities[j]] })

	for _, r := range rarities {
		a.ui.Line("%-10s %5.1f%%", r, odds[r])
	}
	return nil
}

func (a *app) showHistory(ctx context.Context, args []string) error {
	const usage = "history [n] | history prune [days]"

	if len(args) > 0 && args[0] == "prune" {
		days := a.retentionDays
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v <= 0 {
				return usageError(usage)
			}
			days = v
		}
		removed, err := eventlog.NewCleanupJob(a.history, days).Process(ctx)
		if err != nil {
			return err
		}
		a.ui.Success("Removed %d history entries older than %d day(s)", removed, days)
		return nil
	}

	limit := 20
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return usageError(usage)
		}
		limit = v
	}

	events, err := a.history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		a.ui.Info("No activity yet")
		return nil
	}
	for _, evt := range events {
		a.ui.Line("%s  %-26s %s", evt.CreatedAt.Format("2006-01-02 15:04"), evt.EventType, evt.Payload)
	}
	return nil
}

func (a *app) printCollect(res domain.CollectResult) {
	if res.Created {
		a.ui.Success("New: %s (%s)  %s", res.Item.Title, res.Item.County, res.Item.ID)
		return
	}
	a.ui.Info("Check-in #%d: %s (%s)", res.Item.CheckInCount, res.Item.Title, res.Item.County)
}

func (a *app) printGrant(grant domain.GrantResult) {
	if grant.XPGained > 0 {
		a.ui.Line("+%d XP (total %d)", grant.XPGained, grant.TotalXP)
	}
	if grant.LeveledUp {
		a.ui.Success("Level up! %d -> %d", grant.OldLevel, grant.NewLevel)
	}
	if grant.TierChanged {
		a.ui.Success("New tier: %s", grant.NewTier)
	}
}

func markLabel(m domain.ItemMark) string {
	if m == domain.MarkNone {
		return "unmarked"
	}
	return string(m)
}
