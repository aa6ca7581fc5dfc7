package line

import "strings"

// Rule maps a set of trigger keywords to a canned reply payload. The rule
// list is evaluated top to bottom and the first rule with any matching
// keyword wins, so ordering is part of the contract: the relocation notice
// must stay first, the reservation-form marker second.
type Rule struct {
	Keywords []string
	Messages []Message
}

const (
	relocationNotice = "山中湖店は移転いたしました。現在は河口湖店のみ営業しております。\n住所：〒401-0301 山梨県南都留郡富士河口湖町船津3376-3"

	reservationMarker = "【予約リクエストフォーム】"

	reservationConfirmText = "ご予約ありがとうございます。\nこちらでご予約承ります\n\nお客様にお伺いしたいことなどで後ほどご連絡させていただく場合がございます。ご了承ください。\n\n※当日遅れるお客様へ\n\n渋滞などで20分以内の遅刻の場合は連絡は不要ですのでそのままお越しください。\n\n🚙お車でお越しのお客様へ。\n\n富士家向かいに姉妹店の猫カフェアトリエ高菜先生がございます。\n\nそちらの駐車場をお使いくださいませ。ご協力お願いいたします。"

	parkingImageURL  = "https://houtoutaiken.lp-web.net/wp-content/uploads/2025/01/1737362052820.jpg"
	parkingImageURL2 = "https://houtoutaiken.lp-web.net/wp-content/uploads/2025/01/1737362053016.jpg"

	morningReplyText = "ご予約ありがとうございます！\n\n当店のご予約可能な開始時間は以下の通りです：\n\n・平日：9時30分〜受付開始\n・土日祝：9時〜受付開始\n\nお好きな時間をお知らせくださいませ。"
)

// rules is the single authoritative fixed-response list, immutable after
// startup. Every keyword appears in exactly one rule.
var rules = []Rule{
	{
		Keywords: []string{"山中湖", "山中湖店", "山中湖支店"},
		Messages: []Message{TextMessage(relocationNotice)},
	},
	{
		Keywords: []string{reservationMarker},
		Messages: []Message{
			TextMessage(reservationConfirmText),
			ImageMessage(parkingImageURL, parkingImageURL),
			ImageMessage(parkingImageURL2, parkingImageURL2),
		},
	},
	{
		Keywords: []string{"朝一", "朝イチ", "一番早い", "朝予約", "朝から", "早朝", "朝の時間"},
		Messages: []Message{TextMessage(morningReplyText)},
	},
	{
		Keywords: []string{"見学", "子供だけ", "保護者なし", "付き添いのみ", "参加しない"},
		Messages: []Message{TextMessage("当店では見学のみのご利用はお断りしております。大人もお子様も必ず何か体験にご参加いただく必要がございます。")},
	},
	{
		Keywords: []string{"3歳", "幼児", "赤ちゃん", "小さい子", "ベビー", "未就学児"},
		Messages: []Message{TextMessage("体験は3歳以上から参加可能です。4歳以下は無料で、保護者と一緒にご参加いただけますのでご安心ください。")},
	},
	{
		Keywords: []string{"1人", "一人", "ひとり", "ソロ", "一名"},
		Messages: []Message{TextMessage("全ての体験は1名様からご参加いただけます。お気軽にお申し込みください。")},
	},
	{
		Keywords: []string{"猫", "ネコ", "高菜先生", "キャット", "にゃんこ"},
		Messages: []Message{TextMessage("猫は富士家にはおりませんが、向かいの姉妹店「アトリエ高菜先生」で看板猫たちに会えます。\nhttps://rentalspace.lp-web.net/")},
	},
	{
		Keywords: []string{"団体", "大人数", "修学旅行", "25名", "バス", "グループ"},
		Messages: []Message{TextMessage("25名以上の団体様は電話またはメールでご相談ください。\n📞050-6882-5580\n📩fujiya.taiken@gmail.com")},
	},
	{
		Keywords: []string{"おすすめ", "セット", "人気セット"},
		Messages: []Message{TextMessage("人気の体験セットは「山梨名物土産セット」「七味作りセット」「染物セット」です。ぜひご検討ください。")},
	},
	{
		Keywords: []string{"どの体験", "体験おすすめ", "人気体験"},
		Messages: []Message{TextMessage("人気の体験は「ほうとう体験」「染物体験」「七味作り体験」です。どなたでも楽しんでいただけます。")},
	},
	{
		Keywords: []string{"食べ放題", "バイキング", "ビュッフェ"},
		Messages: []Message{TextMessage("当店では食べ放題メニューはございません。")},
	},
	{
		Keywords: []string{"二郎", "マシマシ", "ガッツリ", "二郎系"},
		Messages: []Message{TextMessage("当店オリジナルの『二郎系うどん作り体験』（3500円）は野菜たっぷりで男性に人気です。")},
	},
	{
		Keywords: []string{"すりだね", "辛味", "山梨スパイス", "唐辛子"},
		Messages: []Message{TextMessage("すりだねは店頭販売と通販でお求めいただけます。\nhttps://gekikaratakanasensei.lp-web.net/")},
	},
	{
		Keywords: []string{"16時", "17時", "16時以降", "夕方予約", "遅い時間"},
		Messages: []Message{TextMessage("営業時間は18時、体験の最終受付は16時です。それ以降の体験予約はお受けできません。")},
	},
	{
		Keywords: []string{"キャンセル", "予約取り消し", "人数変更"},
		Messages: []Message{TextMessage("ご予約5日前からキャンセル料が発生いたします。人数変更の場合は無料です。\n詳しくはこちら：https://houtoutaiken.lp-web.net/rule/")},
	},
	{
		Keywords: []string{"藍染 持ち込み", "染め 持ち込み", "服 持参"},
		Messages: []Message{TextMessage("藍染体験では衣類の持ち込みが可能です。持ち込み料は無料、Tシャツ代も不要になります。")},
	},
	{
		Keywords: []string{"電話", "でんわ", "tel"},
		Messages: []Message{TextMessage("個人のお客様にはLINEまたはメールでのご連絡をお願いしておりますがお急ぎの場合は050-6882-5580までご連絡ください。")},
	},
}

// Classify runs the rule chain over the message text and returns the first
// matching rule's payload. Matching is case-insensitive substring containment
// against any keyword of a rule. Returns ok=false when no rule matches and
// the generative fallback should take over. Pure function of the text.
func Classify(text string) ([]Message, bool) {
	lowered := strings.ToLower(text)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return rule.Messages, true
			}
		}
	}

	return nil, false
}
