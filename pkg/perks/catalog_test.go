package perks

import (
	"errors"
	"testing"
)

func TestCatalogOffer(t *testing.T) {
	_, cfg := newTestContext(t, &fixedRandom{})
	catalog := NewCatalog(cfg.Perks)

	cards := catalog.Offer()
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	want := []string{"Damaging Circle", "Lightning Strike", "Stat Boost: Health"}
	for i, card := range cards {
		if card.Name != want[i] {
			t.Errorf("Card %d: expected %q, got %q", i, want[i], card.Name)
		}
		if card.Upgrade {
			t.Errorf("Card %d must not be an upgrade before activation", i)
		}
	}
}

func TestCatalogChoose(t *testing.T) {
	ctx, cfg := newTestContext(t, &fixedRandom{})
	catalog := NewCatalog(cfg.Perks)

	// 首次选择：激活并加入玩家天赋
	p, err := catalog.Choose(0, ctx)
	if err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if !p.Activated() || len(catalog.Owned()) != 1 {
		t.Fatalf("Expected activated and owned, owned=%d", len(catalog.Owned()))
	}

	card := catalog.Offer()[0]
	if !card.Upgrade || card.Description != p.UpgradeDescription() {
		t.Errorf("Activated perk must be offered as an upgrade, got %+v", card)
	}

	// 再次选择：升级，不重复加入
	if _, err := catalog.Choose(0, ctx); err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if p.Level() != 2 || len(catalog.Owned()) != 1 {
		t.Errorf("Expected level 2 and one owned perk, got level %d owned %d", p.Level(), len(catalog.Owned()))
	}

	// 属性强化：立即生效，不加入列表
	if _, err := catalog.Choose(2, ctx); err != nil {
		t.Fatalf("Choose failed: %v", err)
	}
	if len(catalog.Owned()) != 1 {
		t.Errorf("Stat boost must not be owned, got %d", len(catalog.Owned()))
	}
	if healthOf(t, ctx, ctx.Player) != 110 {
		t.Errorf("Expected stat boost to add health, got %d", healthOf(t, ctx, ctx.Player))
	}
}

func TestCatalogChooseInvalidIndex(t *testing.T) {
	ctx, cfg := newTestContext(t, &fixedRandom{})
	catalog := NewCatalog(cfg.Perks)

	for _, idx := range []int{-1, 3} {
		if _, err := catalog.Choose(idx, ctx); !errors.Is(err, ErrInvalidPerkIndex) {
			t.Errorf("Choose(%d): expected ErrInvalidPerkIndex, got %v", idx, err)
		}
	}
}

func TestCatalogSessionsAreIndependent(t *testing.T) {
	ctx, cfg := newTestContext(t, &fixedRandom{})
	first := NewCatalog(cfg.Perks)
	second := NewCatalog(cfg.Perks)

	first.Choose(1, ctx)

	if second.Offer()[1].Upgrade || len(second.Owned()) != 0 {
		t.Error("Catalogs must not share perk state")
	}
}
