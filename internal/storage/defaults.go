package storage

const BankInfoKey = "bank_transfer_info"

const assetHost = "https://pub-e001eb4506b145aa938b5d3badbff6a5.r2.dev/attachments/"

func DefaultBankInfo() BankInfo {
	return BankInfo{
		BankName:      "Bank of Maldives (BML)",
		AccountName:   "Club Invaders",
		AccountNumber: "7730000123456",
	}
}

func DefaultMerch() []NewMerchItem {
	return []NewMerchItem{
		{Name: "Invaders Jersey", Price: "MVR 450", Image: assetHost + "178mqg61am4g21236pwuw"},
		{Name: "Training Tee", Price: "MVR 350", Image: assetHost + "34uyhij0bcupj5bflvvl4"},
		{Name: "Classic Black", Price: "MVR 400", Image: assetHost + "k8fftgqvhhmfvknwursfz"},
		{Name: "Away Kit", Price: "MVR 500", Image: assetHost + "whfnttw8z01twziof2p42"},
	}
}

func portrait(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?w=200&h=200&fit=crop&crop=face"
}

func DefaultHeroes() []NewHero {
	return []NewHero{
		{Name: "Ahmed Rasheed", Position: "Goalkeeper", Number: "1", Image: portrait("1507003211169-0a1dd7228f2d")},
		{Name: "Ibrahim Naseem", Position: "Defender", Number: "4", Image: portrait("1500648767791-00dcc994a43e")},
		{Name: "Hassan Ali", Position: "Defender", Number: "5", Image: portrait("1472099645785-5658abf4ff4e")},
		{Name: "Mohamed Shifaz", Position: "Defender", Number: "3", Image: portrait("1506794778202-cad84cf45f1d")},
		{Name: "Yoosuf Shareef", Position: "Midfielder", Number: "8", Image: portrait("1519345182560-3f2917c472ef")},
		{Name: "Ali Waheed", Position: "Midfielder", Number: "10", Image: portrait("1463453091185-61582044d556")},
		{Name: "Hussain Nizam", Position: "Midfielder", Number: "6", Image: portrait("1501196354995-cbb51c65aaea")},
		{Name: "Ismail Faisal", Position: "Midfielder", Number: "14", Image: portrait("1522075469751-3a6694fb2f61")},
		{Name: "Abdulla Shimaz", Position: "Forward", Number: "9", Image: portrait("1504257432389-52343af06ae3")},
		{Name: "Ahmed Nazim", Position: "Forward", Number: "11", Image: portrait("1492562080023-ab3db95bfbce")},
		{Name: "Mohamed Arif", Position: "Forward", Number: "7", Image: portrait("1480455624313-e29b44bbbd7a")},
		{Name: "Hussain Rasheed", Position: "Substitute", Number: "12", Image: portrait("1507591064344-4c6ce005b128")},
	}
}
