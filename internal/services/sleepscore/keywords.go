package sleepscore

// Keyword lists driving the content analysis. Matching is case-insensitive
// substring search; each list adjusts the score at most once per analysis.

// negativeKeywords mark content unsuited to falling asleep (-15).
var negativeKeywords = []string{
	"脱口秀", "吐槽", "爆笑", "笑声", "音乐", "辩论", "激动", "激烈",
	"争论", "吵架", "尖叫", "惊悚", "恐怖", "悬疑", "刺激",
	"comedy", "music", "debate", "exciting", "laugh", "funny", "thriller",
	"horror", "suspense", "intense",
}

// positiveKeywords mark sleep-friendly content (+10).
var positiveKeywords = []string{
	"冥想", "asmr", "睡眠", "放松", "平静", "舒缓", "轻柔", "故事",
	"朗读", "诗歌", "散文", "历史", "科普", "知识",
	"meditation", "sleep", "relax", "calm", "story", "read", "history",
	"peaceful", "gentle", "soft",
}

// intenseEmotionKeywords are checked against the description only (-10).
var intenseEmotionKeywords = []string{
	"兴奋", "激动", "热烈", "疯狂", "狂欢", "exciting", "intense", "frenzy",
}

// calmKeywords are checked against the description only (+5).
var calmKeywords = []string{
	"平静", "安静", "温和", "柔和", "舒适", "calm", "quiet", "gentle",
	"soft", "comfortable", "peaceful",
}
