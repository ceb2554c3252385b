package messaging

import "fmt"

// phrasebook holds every line the service can say in one language
type phrasebook struct {
	penaltyPrompt    func(loser string) string
	commentaryPrompt func(winner string) string

	offlinePenalties  []string
	offlineSuffix     string
	networkPenalty    string
	defaultPenalty    string
	defaultCommentary string

	idleStatus     []string
	racingStatus   []string
	finishedStatus []string

	drunk func(name string, count int) string
}

var phrasebooks = map[Locale]*phrasebook{
	LocaleEnglish: {
		penaltyPrompt: func(loser string) string {
			return fmt.Sprintf(`You are the referee of a beer drinking race. The player "%s" just lost (drank the slowest).
The penalty MUST be exactly one of these three:
1. "Drink 100%% of this glass"
2. "Drink 50%% of this glass"
3. "Drink 30%% of this glass"
Pick one at random and add a short, cheeky reason (under 15 words).
Examples: "Drink 50%% - for dawdling!", "Drink 100%% - so you never forget!".`, loser)
		},
		commentaryPrompt: func(winner string) string {
			return fmt.Sprintf(`The player "%s" just won a beer drinking race. Praise them in one very short line (under 10 words) in the style of a wuxia novel.`, winner)
		},
		offlinePenalties:  []string{"Drink 100%", "Drink 50%", "Drink 30%"},
		offlineSuffix:     " (offline)",
		networkPenalty:    "Drink 50% - the network died, drink anyway!",
		defaultPenalty:    "Drink 100% - because the referee said so!",
		defaultCommentary: "A true master of the martial world!",
		idleStatus: []string{
			"Glasses are full. Who's brave enough?",
			"Place your bets and line up the glasses.",
			"Nobody leaves until somebody drinks.",
		},
		racingStatus: []string{
			"Chugging...",
			"Bottoms up! Chugging...",
			"Glug glug glug... Chugging...",
		},
		finishedStatus: []string{
			"Race over! Somebody owes a drink.",
			"The glasses are empty and the pot is paid.",
			"That's a wrap. Reset for another round?",
		},
		drunk: func(name string, count int) string {
			switch {
			case count == 0:
				return fmt.Sprintf("%s hasn't touched a drop", name)
			case count < 3:
				return fmt.Sprintf("%s has only had %d, barely a sip!", name, count)
			case count < 5:
				return fmt.Sprintf("%s is starting to feel it, look at that red face!", name)
			case count < 8:
				return fmt.Sprintf("%s is %d deep and seeing double!", name, count)
			default:
				return fmt.Sprintf("%s has downed %d, call a tow truck!", name, count)
			}
		},
	},
	LocaleVietnamese: {
		penaltyPrompt: func(loser string) string {
			return fmt.Sprintf(`Bạn là trọng tài của game uống bia. Người chơi tên "%s" vừa thua cuộc (uống chậm nhất).
Quy luật hình phạt CHỈ ĐƯỢC CHỌN 1 trong 3 mức sau:
1. "Uống 100%% ly này"
2. "Uống 50%% ly này"
3. "Uống 30%% ly này"
Hãy chọn ngẫu nhiên một mức, và kèm theo một lý do hài hước, cà khịa ngắn gọn (dưới 15 từ).
Ví dụ: "Uống 50%% - Vì cái tội lề mề!", "Uống 100%% - Phạt cho nhớ đời!".`, loser)
		},
		commentaryPrompt: func(winner string) string {
			return fmt.Sprintf(`Người chơi tên "%s" vừa chiến thắng game uống bia. Khen 1 câu cực ngắn (dưới 10 từ) phong cách kiếm hiệp.`, winner)
		},
		offlinePenalties:  []string{"Uống 100%", "Uống 50%", "Uống 30%"},
		offlineSuffix:     " (offline)",
		networkPenalty:    "Uống 50% - Lỗi mạng rồi, uống đi!",
		defaultPenalty:    "Uống 100% - Vì AI bảo thế!",
		defaultCommentary: "Cao thủ võ lâm!",
		idleStatus: []string{
			"Bia đã rót đầy. Ai dám vào?",
			"Đặt cược rồi xếp ly nào!",
		},
		racingStatus: []string{
			"Đang nốc...",
			"Dzô dzô dzô! Đang nốc...",
		},
		finishedStatus: []string{
			"Xong trận! Có người phải uống rồi.",
			"Ly cạn, tiền chia xong. Làm ván nữa không?",
		},
		drunk: func(name string, count int) string {
			switch {
			case count == 0:
				return "Chưa nhấp môi"
			case count < 3:
				return fmt.Sprintf("%s mới uống %d ly thôi, chưa xi-nhê!", name, count)
			case count < 5:
				return fmt.Sprintf("%s bắt đầu ngấm rồi, mặt đỏ kìa!", name)
			case count < 8:
				return fmt.Sprintf("%s uống %d ly rồi, nhìn 1 thành 2!", name, count)
			default:
				return fmt.Sprintf("%s nốc %d ly rồi, gọi xe cẩu về!", name, count)
			}
		},
	},
}
