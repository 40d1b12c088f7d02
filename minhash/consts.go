package minhash

// laneA and laneB are the fixed linear-permutation constants for the 64
// MinHash lanes. They are specification constants: the sketch for a given
// feature sequence is only comparable across implementations that share
// these exact values.
var laneA = [64]uint32{
	0x3df9935d, 0x97e46e0b, 0x140e59ab, 0x9505fe89, 0xe8f6a181, 0xc718883b, 0xc8da7247, 0xcb7e9145,
	0xbb1e3337, 0x534157b9, 0xb7e3a485, 0x42412925, 0xa312e02f, 0x2784b255, 0x1990bb23, 0xa4a8ec1d,
	0x16a9e16b, 0x4fc06b03, 0x353b9c93, 0xe223a531, 0x71930acd, 0x4ba1c273, 0xb9c0d7df, 0x86dbd0eb,
	0x807e2fa3, 0xd33ca445, 0xe6540bab, 0xc7965bdf, 0xef7628b5, 0xc40711c1, 0xfc0a91d1, 0xefb1c0f3,
	0x77914ed7, 0x57054211, 0xdd1f4977, 0xb6e6283b, 0x81177dcb, 0x41ea99a5, 0x84bee80d, 0x19518de7,
	0x140598d5, 0x70ea8aef, 0x7d17ca0b, 0x2a17a143, 0x5cb71ae5, 0x07ce5a81, 0xc39e2283, 0xbd194b19,
	0x644247fb, 0x42050af5, 0x835d3eff, 0x62f4292b, 0xc3e43d27, 0x178699ff, 0xa7b67ae3, 0xcd8bc5a3,
	0x68c88599, 0xe02f7bd5, 0x64a42001, 0x8e7a8b79, 0x6c75dbf9, 0x8caa5ccd, 0x7ea6ddef, 0xe5a87e55,
}

var laneB = [64]uint32{
	0x216af510, 0x83a000e0, 0x17f47744, 0xcb634e16, 0x21cd89ca, 0xcab19c2f, 0xe3264b5e, 0xf60dbe9e,
	0xfca25e70, 0xe7cacd3b, 0xf99fb316, 0x426dd125, 0xd7db0aab, 0xf7a004b2, 0x9864fe87, 0xe1de648c,
	0x289c2986, 0x69bbce26, 0x8c7bdb55, 0xc4d6bb41, 0xed3e598d, 0x4fe54944, 0xe02e383b, 0x024515d2,
	0x9d1c60d1, 0x93cb1026, 0xdd3c9ce3, 0xbe4af435, 0x70001326, 0xd449b0af, 0x98cb4fc0, 0xeef20e58,
	0x8dd3cbdb, 0x890d95f9, 0x22be2216, 0x6eb73928, 0x38d6a470, 0xb58d6121, 0xe43dca3c, 0xf00a9292,
	0x030b1653, 0xe3bf99ec, 0x83c6e9d7, 0xe99632bd, 0x2648aaf0, 0x8f755cfa, 0x66621b99, 0xd68931e0,
	0x8bf2b6eb, 0x1ff61589, 0xe89f64fb, 0x74cf7e80, 0xa08f25dd, 0xa8b477b1, 0x9aa26f01, 0xa2ae13bd,
	0xdbe4d6ad, 0x56aa122b, 0x93b2d4d3, 0xdc5313f4, 0x0f70b7ce, 0xb8887ddf, 0xc870dc3e, 0xb0a9a07f,
}
