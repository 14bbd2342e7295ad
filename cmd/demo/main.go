// main.go

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jackhua-dev/GitQuest-Server/internal/game"
	"github.com/jackhua-dev/GitQuest-Server/internal/models"
	"github.com/jackhua-dev/GitQuest-Server/internal/storage"
)

// 演示模式：不需要任何外部活动来源，用模拟的提交和合并请求
// 批次驱动一个全新角色，展示完整的战斗、升级和掉落流程

func main() {
	// 解析命令行参数
	savePath := flag.String("save", "demo_save.json", "演示存档文件路径")
	commits := flag.Int("commits", 25, "模拟的提交数量")
	approvals := flag.Int("approvals", 2, "模拟的合并请求批准数量")
	seed := flag.Int64("seed", 0, "随机种子，0表示使用时间种子")
	flag.Parse()

	store := storage.NewFileStore(*savePath)
	rng := game.NewRNG(*seed)

	session, err := game.LoadOrCreate(store, "Demo Hero", "Python", rng)
	if err != nil {
		log.Fatalf("初始化演示会话失败: %v", err)
	}

	log.Printf("模拟 %d 次提交和 %d 次合并请求批准...", *commits, *approvals)

	report, err := session.SyncBatch(generateEvents(*commits, *approvals))
	if err != nil {
		log.Fatalf("处理演示事件失败: %v", err)
	}

	log.Printf("批次完成: 共 %d 条，处理 %d 条，跳过 %d 条，非法 %d 条",
		report.Total, report.Processed, report.Skipped, report.Invalid)

	printSheet(session)
	log.Printf("演示存档已保存到 %s", *savePath)
}

// generateEvents 生成按时间升序排列的模拟活动事件批次
func generateEvents(commits, approvals int) []models.ActivityEvent {
	repos := []string{"backend/api", "backend/worker", "frontend/web"}
	titles := []string{
		"Add authentication system",
		"Fix critical bug in payment processing",
		"Refactor sync pipeline",
	}

	events := make([]models.ActivityEvent, 0, commits+approvals)
	now := time.Now().Add(-time.Duration(commits+approvals) * time.Minute)

	for i := 0; i < commits; i++ {
		events = append(events, models.ActivityEvent{
			Type:      models.EventCommit,
			Repo:      repos[i%len(repos)],
			SHA:       uuid.New().String(),
			Timestamp: now.Add(time.Duration(i) * time.Minute),
		})
	}
	for i := 0; i < approvals; i++ {
		events = append(events, models.ActivityEvent{
			Type:           models.EventMergeRequestApproved,
			Repo:           repos[i%len(repos)],
			MergeRequestID: int64(i + 1),
			Title:          titles[i%len(titles)],
			Timestamp:      now.Add(time.Duration(commits+i) * time.Minute),
		})
	}
	return events
}

// printSheet 打印角色面板、统计和背包
func printSheet(session *game.Session) {
	sheet := session.GetCharacterSheet()
	enemy := session.GetCurrentEnemy()
	stats := session.GetStatistics()
	items := session.GetInventory()

	fmt.Println("==== CHARACTER ====")
	fmt.Printf("%s — %s %s (主要语言: %s)\n", sheet.Name, sheet.Race, sheet.Class, sheet.PrimaryLanguage)
	fmt.Printf("Level %d | XP %d/%d | HP %d/%d\n",
		sheet.Level, sheet.XP, sheet.XPForNextLevel, sheet.CurrentHP, sheet.MaxHP)

	fmt.Println("==== CURRENT ENEMY ====")
	fmt.Printf("%s (Level %d) HP %d/%d\n", enemy.Name, enemy.Level, enemy.CurrentHP, enemy.MaxHP)

	fmt.Println("==== STATISTICS ====")
	fmt.Printf("Commits: %d | Damage: %d | Mobs: %d | MRs: %d | Items: %d\n",
		stats.TotalCommits, stats.TotalDamageDealt, stats.MobsDefeated,
		stats.MergeRequestsApproved, stats.ItemsCollected)

	fmt.Println("==== INVENTORY ====")
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i, item := range items {
		fmt.Printf("%d. [%s] %s (%s) - Power: %d\n", i+1, item.Rarity, item.Name, item.Type, item.Power)
	}
}
