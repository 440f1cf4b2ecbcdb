package i18n

var chineseTranslations = map[string]string{
	// 封面
	"title.status_report": "项目状态报告",
	"title.period":        "报告期：%s 至 %s",
	"title.pm":            "项目经理：%s",

	// 进展概要
	"progress.title":    "进展概要",
	"progress.hours":    "工时：%s（可计费 %s）",
	"progress.team":     "团队：%s 人",
	"progress.expenses": "费用：$%s",
	"progress.posture":  "里程碑状态",

	"accomplishments.title": "主要成果",
	"accomplishments.empty": "本期暂无成果数据。",

	// RAIDD
	"raidd.title":        "风险、问题与关键决策 (RAIDD)",
	"raidd.risks":        "风险",
	"raidd.issues":       "问题",
	"raidd.action_items": "行动项",
	"raidd.decisions":    "决策",
	"raidd.dependencies": "依赖",
	"raidd.none":         "当前没有进行中的%s。",
	"raidd.owner":        "负责人：%s",
	"raidd.due":          "截止：%s",
	"raidd.mitigation":   "缓解措施：%s",

	"upcoming.title": "后续计划",
	"upcoming.empty": "暂无后续计划数据。",

	// 时间线
	"timeline.title":      "时间线与里程碑",
	"timeline.no_data":    "本项目暂无时间线数据。",
	"timeline.unlinked":   "项目里程碑",
	"timeline.skipped":    "%d 项因日期缺失或无效未显示",
	"timeline.col.name":   "里程碑",
	"timeline.col.target": "目标日期",
	"timeline.col.status": "状态",
	"timeline.col.range":  "日期范围",
}
