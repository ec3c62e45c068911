package nlp

const copulaPolite = "입니다"

// Ordered longest first.
var copulas = []suffix{
	{"이에요", needsFinal},
	{"이었다", needsFinal},
	{"입니다", anyFinal},
	{"이다", needsFinal},
	{"예요", needsOpen},
	{"였다", needsOpen},
}

var josas = []suffix{
	{"에서는", anyFinal},
	{"에게서", anyFinal},
	{"으로", needsFinal},
	{"이랑", needsFinal},
	{"이나", needsFinal},
	{"에서", anyFinal},
	{"에게", anyFinal},
	{"한테", anyFinal},
	{"까지", anyFinal},
	{"부터", anyFinal},
	{"보다", anyFinal},
	{"처럼", anyFinal},
	{"마다", anyFinal},
	{"하고", anyFinal},
	{"은", needsFinal},
	{"이", needsFinal},
	{"을", needsFinal},
	{"과", needsFinal},
	{"는", needsOpen},
	{"가", needsOpen},
	{"를", needsOpen},
	{"와", needsOpen},
	{"로", needsOpen},
	{"랑", needsOpen},
	{"나", needsOpen},
	{"에", anyFinal},
	{"의", anyFinal},
	{"도", anyFinal},
	{"만", anyFinal},
}

var adjectiveEndings = []string{
	"습니다", "니다", "어요", "아요", "여요", "네요", "군요", "지만", "는데", "은데",
	"다", "요", "고", "게", "지", "서", "면", "는", "은", "음",
}

var verbEndings = []string{
	"습니다", "니다", "어요", "아요", "여요", "네요", "군요", "지만", "는데", "은데",
	"다", "요", "고", "면",
}

var defaultAdjectiveStems = []string{
	"좋", "싫", "나쁘", "나빠", "재밌", "재미있", "재미없", "멋있", "멋지", "멋져", "맛있",
	"아름답", "아름다우", "아름다워", "슬프", "슬퍼", "기쁘", "기뻐", "무섭", "무서우", "무서워",
	"아쉽", "아쉬우", "아쉬워", "귀엽", "귀여우", "귀여워", "지겹", "지겨우", "지겨워",
	"어렵", "어려우", "어려워", "새롭", "새로우", "놀랍", "놀라우", "놀라워", "아깝", "아까우", "아까워",
	"예쁘", "예뻐", "길", "짧", "크", "커", "작", "많", "적", "같", "다르", "달라", "있", "없", "괜찮",
	"훌륭", "대단", "지루", "유치", "뻔", "신선", "웅장", "화려", "허무", "잔잔", "탄탄",
	"훈훈", "진부", "식상", "찝찝", "깔끔", "답답", "완벽", "착", "애매", "어색", "감사",
}

// Words tagged as nouns without further splitting.
var defaultNouns = []string{
	"영화", "진짜", "정말", "최고", "그냥", "이제", "정도", "부분", "중간", "올해", "간만",
	"하나", "보고", "볼", "배우", "연기", "감독", "스토리", "고양이", "평가", "시간",
	"마지막", "액션", "장면", "음악", "사람", "기대", "내용", "전개", "마블", "결말",
	"긴장감", "연출", "몰입", "몰입감", "반전", "주인공", "역사", "사극", "배경", "극장",
	"관객", "시리즈", "후속작", "추모", "캐릭터", "여운", "눈물", "감동", "재미", "생각",
	"느낌", "처음", "이야기", "세자", "맹인", "침술사", "왕", "와칸다", "팬서", "블랙",
	"포에버", "티찰라", "채드윅", "보스만", "류준열", "유해진", "배우들",
}

var defaultAdverbs = []string{
	"너무", "매우", "아주", "가장", "다시", "또", "잘", "많이", "특히", "계속", "조금",
	"훨씬", "완전", "역시", "벌써", "아직", "그래도", "하지만", "그리고", "근데", "되게",
}
