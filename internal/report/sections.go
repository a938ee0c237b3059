package report

import (
	"fmt"
	"sort"
	"time"
)

type datedSoldier struct {
	soldier *Soldier
	date    time.Time
}

func sortByDateThenRank(items []datedSoldier) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].date.Equal(items[j].date) {
			return items[i].date.Before(items[j].date)
		}
		return items[i].soldier.Rank.Index() < items[j].soldier.Rank.Index()
	})
}

func buildReligion(rc *renderContext) []string {
	var lines []string
	for _, religion := range Religions {
		members := rc.roster.Resolve(rc.req.Group.Religion[religion])
		if len(members) == 0 {
			continue
		}
		lines = append(lines, "", fmt.Sprintf("[%s]", religion), memberLine(members))
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]string{"⛪️ 종교"}, lines...)
}

func buildOutpatient(rc *renderContext) []string {
	var items []datedSoldier
	for _, s := range rc.roster.Soldiers() {
		trait := s.Traits.Outpatient
		if !trait.Active {
			continue
		}
		date, ok := parseOptional(trait.Date)
		if !ok || date.Before(rc.today) {
			continue
		}
		items = append(items, datedSoldier{soldier: s, date: date})
	}
	sortByDateThenRank(items)

	lines := []string{"🏥 외진", ""}
	if len(items) == 0 {
		return append(lines, "-")
	}
	for _, item := range items {
		place := ""
		if p := item.soldier.Traits.Outpatient.Place; p != "" {
			place = " " + p
		}
		lines = append(lines, fmt.Sprintf("%s %s %s%s 외진 예정입니다.",
			shortDate(item.date), item.soldier.Rank, item.soldier.Name, place))
	}
	return lines
}

func buildVisit(rc *renderContext) []string {
	var items []datedSoldier
	for _, s := range rc.roster.Soldiers() {
		trait := s.Traits.Visit
		if !trait.Active || trait.Visitor == "" {
			continue
		}
		date, ok := parseOptional(trait.Date)
		if !ok || date.Before(rc.today) {
			continue
		}
		items = append(items, datedSoldier{soldier: s, date: date})
	}
	if len(items) == 0 {
		return nil
	}
	sortByDateThenRank(items)

	lines := []string{"👪 면회", ""}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s 면회 (%s) 희망합니다.",
			shortDate(item.date), item.soldier.Rank, item.soldier.Name, item.soldier.Traits.Visit.Visitor))
	}
	return lines
}

func buildHaircut(rc *renderContext) []string {
	lines := []string{"💈 민간이발"}
	var members []*Soldier
	if rc.req.Group.Haircut.Enabled {
		members = rc.roster.Resolve(rc.req.Group.Haircut.Members)
	}
	if len(members) == 0 {
		return append(lines, fmt.Sprintf("%s생활관 민간이발 희망자 없습니다.", rc.req.Room))
	}
	return append(lines, memberLine(members))
}

func buildTraining(rc *renderContext) []string {
	lines := []string{"⬆️ 병기본"}
	if rc.req.Group.TrainingEnabled {
		for _, training := range Trainings {
			members := rc.roster.Resolve(rc.req.Group.Training[training])
			if len(members) == 0 {
				continue
			}
			lines = append(lines, "", fmt.Sprintf("%s %s", trainingIcons[training], training.label()), memberLine(members))
		}
	}
	if len(lines) == 1 {
		lines = append(lines, "", fmt.Sprintf("%s생활관 병기본 희망자 없습니다.", rc.req.Room))
	}
	return lines
}

type deliveryItem struct {
	date    time.Time
	food    string
	members []*Soldier
}

func buildDelivery(rc *renderContext) []string {
	if !rc.req.Group.DeliveryEnabled {
		return nil
	}
	var items []deliveryItem
	for _, order := range rc.req.Group.DeliveryOrders {
		if order.Food == "" {
			continue
		}
		date, ok := parseOptional(order.Date)
		if !ok || date.Before(rc.today) {
			continue
		}
		members := rc.roster.Resolve(order.Members)
		if len(members) == 0 {
			continue
		}
		items = append(items, deliveryItem{date: date, food: order.Food, members: members})
	}
	if len(items) == 0 {
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date.Before(items[j].date)
	})

	lines := []string{"🍜 배달 음식", ""}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %s %s 배달 신청합니다.",
			shortDate(item.date), FormatMembers(item.members), item.food))
	}
	return lines
}

func buildNotes(rc *renderContext) []string {
	var lines []string
	notes := rc.req.Notes
	if notes.Assault.Exists && notes.Assault.Details != "" {
		lines = append(lines, "구타 및 가혹행위: "+notes.Assault.Details)
	}
	if notes.Special.Exists && notes.Special.Details != "" {
		lines = append(lines, "특이사항: "+notes.Special.Details)
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]string{"📝 기타", ""}, lines...)
}
