package addrbook

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

func a(hex string) ethcommon.Address {
	return ethcommon.HexToAddress(hex)
}

// Default returns the book of known deployments. The ETH role points at
// the wrapped ether contract of each network.
func Default() Static {
	return Static{
		"mainnet": {
			DTH:  a("0x5adc961d6ac3f7062d2ea45fefb8d8167d44b190"),
			DAI:  a("0x89d24a6b4ccb1b6faa2625fe562bdd9a23260359"),
			BNB:  a("0xb8c77482e45f1f44de1745f52c74426c631bdd52"),
			MKR:  a("0x9f8f72aa9304c8b593d555f12ef6589cc3a579a2"),
			OMG:  a("0xd26114cd6ee289accf82350c8d8487fedb8a0c07"),
			ZRX:  a("0xe41d2489571d322189246dafa5ebde1f4699f498"),
			VEN:  a("0xd850942ef8811f2a866692a623011bde52a462c1"),
			AE:   a("0x5ca9a71b1d01849c0a95490cc00559717fcf0d1d"),
			REP:  a("0xe94327d07fc17907b4db788e5adf2ed424addff6"),
			BAT:  a("0x0d8775f648430679a709e98d2b0cb6250d2887ef"),
			LINK: a("0x514910771af9ca656af840dff83e8264ecf986ca"),
			TUSD: a("0x8dd5fbce2f6a956c3022ba3663759011dd51e73e"),
			SNT:  a("0x744d70fdbe2ba4cf95131626614a1763df805b9e"),
			IOST: a("0xfa1a856cfa3409cfa145fa4e20eb270df3eb21ab"),
			BNT:  a("0x1f573d6fb3f13d689ff844b4ce37794d79a7ff1c"),
			MANA: a("0x0f5d2fb29fb7d3cfee444a200298f468908cc942"),
			ELF:  a("0xbf2179859fc6D5BEE9Bf9158632Dc51678a4100e"),
			POLY: a("0x9992ec3cf6a55b00978cddf2b27bc6882d88d1ec"),
			PAY:  a("0xB97048628DB6B661D4C2aA833e95Dbe1A905B280"),
			KNC:  a("0xdd974D5C2e2928deA5F71b9825b8b646686BD200"),
			ETH:  a("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"),

			KyberNetworkProxy: a("0x818E6FECD516Ecc3849DAf6845e3EC868087B755"),
			AirswapExchange:   a("0x8fd3121013a07c57f0d69646e86e7a4880b467b7"),
			MakerOtc:          a("0x14fbca95be7e99c15cc2996c6c9d841e54b79425"),
			DetherCore:        a("0x876617584678d5b9a6ef93eba92b408367d9457c"),
		},
		"ropsten": {
			DTH: a("0xdb06f28e163684de611f21f76203e42ab4ae5b55"),
			DAI: a("0xaD6D458402F60fD3Bd25163575031ACDce07538D"),
			OMG: a("0x4BFBa4a8F28755Cb2061c413459EE562c6B9c51b"),

			KyberNetworkProxy: a("0x818E6FECD516Ecc3849DAf6845e3EC868087B755"),
			DetherCore:        a("0x55d45a8d5fc7e9ac04c8a2e7e533e1b6f9d3b245"),
		},
		"rinkeby": {
			DTH: a("0xaaa5dd9beff81bb47ccdde852504fb94fa18415c"),
			ETH: a("0xc778417e063141139fce010982780140aa0cd5ab"),

			AirswapExchange: a("0x07fc7c43d8168a2730344e5cf958aaecc3b42b41"),
		},
		"kovan": {
			DTH: a("0x9027E9FC4641e2991A36Eaeb0347Bc5b35322741"),
			DAI: a("0xc4375b7de8af5a38a93548eb8453a498222c4ff2"),
			ETH: a("0xd0A1E359811322d97991E03f863a0C30C2cF029C"),

			MakerOtc: a("0x8cf1Cab422A0b6b554077A361f8419cDf122a9F9"),
		},
	}
}
